package systems

// Pool 固定上限的粒子池
//
// 超过上限的 Spawn 是静默的空操作；剔除时保持剩余元素的相对顺序，
// 绘制顺序因此在帧与帧之间保持稳定。
type Pool[T any] struct {
	items    []T
	capacity int
}

// NewPool 创建上限为 capacity 的粒子池
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Spawn 追加一个元素，池已满时返回 false
func (p *Pool[T]) Spawn(item T) bool {
	if len(p.items) >= p.capacity {
		return false
	}
	p.items = append(p.items, item)
	return true
}

// UpdateAndCull 对每个元素调用 update，移除返回 false 的元素
// 原地压缩，不分配新切片
func (p *Pool[T]) UpdateAndCull(update func(*T) bool) {
	kept := 0
	for i := range p.items {
		if update(&p.items[i]) {
			if kept != i {
				p.items[kept] = p.items[i]
			}
			kept++
		}
	}
	var zero T
	for i := kept; i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = p.items[:kept]
}

// ForEach 按插入顺序遍历
func (p *Pool[T]) ForEach(fn func(*T)) {
	for i := range p.items {
		fn(&p.items[i])
	}
}

// Any 是否存在满足条件的元素
func (p *Pool[T]) Any(pred func(*T) bool) bool {
	for i := range p.items {
		if pred(&p.items[i]) {
			return true
		}
	}
	return false
}

// Len 当前元素数量
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Cap 池上限
func (p *Pool[T]) Cap() int {
	return p.capacity
}

// Clear 清空池
func (p *Pool[T]) Clear() {
	var zero T
	for i := range p.items {
		p.items[i] = zero
	}
	p.items = p.items[:0]
}
