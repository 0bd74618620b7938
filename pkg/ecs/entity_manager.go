package ecs

import (
	"reflect"
	"sort"

	"github.com/kamstrup/intmap"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// componentStore 某一组件类型的存储: EntityID -> Component实例
type componentStore = intmap.Map[EntityID, interface{}]

// EntityManager 管理所有实体和组件
//
// 组件按类型分桶存储在 intmap 中，存活实体按创建顺序保存在有序切片里，
// 因此所有查询结果都按创建顺序（即 ID 升序）返回。
type EntityManager struct {
	nextID uint64
	// 存活实体列表（ID 升序）
	alive []EntityID
	// 组件类型 -> 组件存储
	components map[reflect.Type]*componentStore
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	// 已标记删除的实体集合（防止重复标记）
	marked *intmap.Map[EntityID, struct{}]
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		alive:             make([]EntityID, 0, 64),
		components:        make(map[reflect.Type]*componentStore),
		entitiesToDestroy: make([]EntityID, 0),
		marked:            intmap.New[EntityID, struct{}](16),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	// nextID 单调递增，追加即可保持有序
	em.alive = append(em.alive, id)
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
// 重复标记同一实体会被忽略
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.exists(id) {
		return
	}
	if _, already := em.marked.Get(id); already {
		return
	}
	em.marked.Put(id, struct{}{})
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsAlive 检查实体是否存在且未被标记删除
func (em *EntityManager) IsAlive(id EntityID) bool {
	if !em.exists(id) {
		return false
	}
	_, marked := em.marked.Get(id)
	return !marked
}

// EntityCount 返回当前存储中的实体数量（包括已标记但尚未清理的实体）
func (em *EntityManager) EntityCount() int {
	return len(em.alive)
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if !em.exists(id) {
		return
	}
	componentType := reflect.TypeOf(component)
	store, ok := em.components[componentType]
	if !ok {
		store = intmap.New[EntityID, interface{}](16)
		em.components[componentType] = store
	}
	store.Put(id, component)
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if store, ok := em.components[componentType]; ok {
		store.Del(id)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	store, ok := em.components[componentType]
	if !ok {
		return nil, false
	}
	return store.Get(id)
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.GetComponent(id, componentType)
	return found
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	if len(em.entitiesToDestroy) == 0 {
		return
	}
	for _, id := range em.entitiesToDestroy {
		for _, store := range em.components {
			store.Del(id)
		}
	}

	kept := em.alive[:0]
	for _, id := range em.alive {
		if _, marked := em.marked.Get(id); !marked {
			kept = append(kept, id)
		}
	}
	em.alive = kept

	em.marked.Clear()
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表（按创建顺序）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	stores := make([]*componentStore, 0, len(componentTypes))
	for _, ct := range componentTypes {
		store, ok := em.components[ct]
		if !ok || store.Len() == 0 {
			return result
		}
		stores = append(stores, store)
	}

	for _, id := range em.alive {
		hasAll := true
		for _, store := range stores {
			if _, found := store.Get(id); !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}

// exists 二分查找存活列表
func (em *EntityManager) exists(id EntityID) bool {
	i := sort.Search(len(em.alive), func(i int) bool { return em.alive[i] >= id })
	return i < len(em.alive) && em.alive[i] == id
}
