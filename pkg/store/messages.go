package store

// Event 存储通知场景的状态变化（封闭集合，只有本包内的类型实现）
type Event interface {
	isEvent()
}

// MuteEvent 静音开关被切换
type MuteEvent struct{}

// SellEvent 建筑已售出
type SellEvent struct {
	Building BuildingRecord
}

// BuyEvent 正在放置的建筑已购买，Building.ID 为新分配的 ID
type BuyEvent struct {
	Building BuildingRecord
}

// PlaceBuildingEvent 开始放置新建筑
type PlaceBuildingEvent struct {
	Building PlacingBuilding
}

// CancelPlacementEvent 放置被取消
type CancelPlacementEvent struct{}

// PurchaseRejectedEvent 确认放置后购买失败（如现金不足）
type PurchaseRejectedEvent struct {
	Reason string
}

func (MuteEvent) isEvent()             {}
func (SellEvent) isEvent()             {}
func (BuyEvent) isEvent()              {}
func (PlaceBuildingEvent) isEvent()    {}
func (CancelPlacementEvent) isEvent()  {}
func (PurchaseRejectedEvent) isEvent() {}

// Intent 请求存储修改状态（封闭集合）
type Intent interface {
	isIntent()
}

// ShowBuyModalIntent 打开购买对话框
type ShowBuyModalIntent struct{}

// ShowSellIntent 打开某个建筑的出售对话框
type ShowSellIntent struct {
	Building BuildingRecord
}

// TransactionCompleteIntent 场景已完成买卖的表现，关闭对话框
type TransactionCompleteIntent struct{}

// PlaceBuildingConfirmedIntent 玩家在合法位置确认放置
type PlaceBuildingConfirmedIntent struct{}

// ShowModalIntent 打开任意对话框
type ShowModalIntent struct {
	Kind Modal
}

// BeginPlacementIntent 在购买对话框中选中建筑类型
type BeginPlacementIntent struct {
	Type string
}

// ConfirmSaleIntent 在出售对话框中确认出售
type ConfirmSaleIntent struct{}

// CancelPlacementIntent 取消正在进行的放置
type CancelPlacementIntent struct{}

// MuteIntent 切换静音
type MuteIntent struct{}

// CloseModalIntent 关闭当前对话框
type CloseModalIntent struct{}

// SetAdmissionIntent 修改门票价格
type SetAdmissionIntent struct {
	Value int
}

func (ShowBuyModalIntent) isIntent()           {}
func (ShowSellIntent) isIntent()               {}
func (TransactionCompleteIntent) isIntent()    {}
func (PlaceBuildingConfirmedIntent) isIntent() {}
func (ShowModalIntent) isIntent()              {}
func (BeginPlacementIntent) isIntent()         {}
func (ConfirmSaleIntent) isIntent()            {}
func (CancelPlacementIntent) isIntent()        {}
func (MuteIntent) isIntent()                   {}
func (CloseModalIntent) isIntent()             {}
func (SetAdmissionIntent) isIntent()           {}
