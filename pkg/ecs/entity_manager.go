// Package ecs 提供页面元素使用的实体-组件存储
package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符，0 保留为无效ID
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 组件按类型分别存储：查询时从数量最少的组件类型开始过滤。
// 删除是延迟的：DestroyEntity 只做标记，RemoveMarkedEntities 在帧末统一清理，
// 避免系统遍历过程中实体消失。
type EntityManager struct {
	nextID EntityID
	alive  map[EntityID]struct{}
	// 组件存储: ComponentType -> EntityID -> Component实例
	stores map[reflect.Type]map[EntityID]interface{}
	doomed []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID: 1,
		alive:  make(map[EntityID]struct{}),
		stores: make(map[reflect.Type]map[EntityID]interface{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := em.nextID
	em.nextID++
	em.alive[id] = struct{}{}
	return id
}

// DestroyEntity 标记实体待删除（帧末由 RemoveMarkedEntities 清理）
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.doomed = append(em.doomed, id)
}

// AddComponent 为实体添加组件，同类型组件会被替换
// 对不存在的实体调用时忽略
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if _, ok := em.alive[id]; !ok {
		return
	}
	componentType := reflect.TypeOf(component)
	store, ok := em.stores[componentType]
	if !ok {
		store = make(map[EntityID]interface{})
		em.stores[componentType] = store
	}
	store[id] = component
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if store, ok := em.stores[componentType]; ok {
		delete(store, id)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	store, ok := em.stores[componentType]
	if !ok {
		return nil, false
	}
	comp, found := store[id]
	return comp, found
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.GetComponent(id, componentType)
	return found
}

// RemoveMarkedEntities 清理所有标记删除的实体及其组件
func (em *EntityManager) RemoveMarkedEntities() {
	if len(em.doomed) == 0 {
		return
	}
	for _, id := range em.doomed {
		delete(em.alive, id)
		for _, store := range em.stores {
			delete(store, id)
		}
	}
	em.doomed = em.doomed[:0]
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 返回的ID按创建顺序排列（渲染和点击检测顺序稳定）
// 不传组件类型时返回所有实体
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	if len(componentTypes) == 0 {
		for id := range em.alive {
			result = append(result, id)
		}
		sortIDs(result)
		return result
	}

	// 从最小的组件集合开始
	var smallest map[EntityID]interface{}
	for _, ct := range componentTypes {
		store, ok := em.stores[ct]
		if !ok || len(store) == 0 {
			return result
		}
		if smallest == nil || len(store) < len(smallest) {
			smallest = store
		}
	}

	for id := range smallest {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := em.stores[ct][id]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	sortIDs(result)
	return result
}

// Exists 检查实体是否存在（已标记删除但未清理的实体仍视为存在）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.alive[id]
	return ok
}

// EntityCount 返回当前实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.alive)
}

func sortIDs(ids []EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
