package ecs

import "reflect"

// 泛型查询 API
// 反射版接口要求调用方手写 reflect.TypeOf 和类型断言，系统代码里
// 这种样板占了一半篇幅；泛型封装把类型参数化，调用点只剩一行

// typeOf 返回类型参数对应的 reflect.Type
// 组件一律以指针注册，零值指针装箱后类型信息仍然完整
func typeOf[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

// AddComponent 为实体添加组件（泛型版）
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}

// GetComponent 获取实体的指定类型组件（泛型版）
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	comp, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		var zero T
		return zero, false
	}
	c, ok := comp.(T)
	return c, ok
}

// HasComponent 检查实体是否拥有指定类型组件（泛型版）
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// RemoveComponent 移除实体的指定类型组件（泛型版）
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有一种组件的实体，结果按 EntityID 升序
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 查询同时拥有两种组件的实体，结果按 EntityID 升序
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 查询同时拥有三种组件的实体，结果按 EntityID 升序
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}

// GetEntitiesWith4 查询同时拥有四种组件的实体，结果按 EntityID 升序
func GetEntitiesWith4[T1, T2, T3, T4 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4]())
}
