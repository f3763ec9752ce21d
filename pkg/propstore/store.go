package propstore

import (
	"sync"
)

// Origin 记录属性值的来源。
type Origin string

const (
	OriginDefault  Origin = "default"
	OriginEnv      Origin = "env"
	OriginDefine   Origin = "define"
	OriginExpanded Origin = "expanded"
)

// FileOrigin 返回来自配置文件 path 的来源标记。
func FileOrigin(path string) Origin {
	return Origin("file:" + path)
}

// Entry 是 store 中的一个属性。
type Entry struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Origin Origin `json:"origin"`
	User   bool   `json:"-"`
}

// MemoryStore 按插入顺序保存属性的内存 store。
//
// 属性默认是 set-once：[MemoryStore.SetIfUnset] 不会改写已存在的 key；
// [MemoryStore.SetForced] / [MemoryStore.SetUser] 无条件写入并标记为用户设置。
// 读写加锁，但展开过程本身仍要求单写者。
type MemoryStore struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*Entry
}

// NewMemoryStore 创建空 store。
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]*Entry{}}
}

// Get 读取 key 的值。
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return "", false
	}
	return e.Value, true
}

// Entry 读取 key 的完整记录。
func (s *MemoryStore) Entry(key string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// SetIfUnset 仅在 key 不存在时写入，来源记为 default。
func (s *MemoryStore) SetIfUnset(key, value string) {
	s.Put(key, value, OriginDefault)
}

// Put 仅在 key 不存在时写入，并记录来源。返回是否写入。
func (s *MemoryStore) Put(key, value string, origin Origin) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; ok {
		return false
	}
	s.insert(key, &Entry{Key: key, Value: value, Origin: origin})

	return true
}

// SetForced 无条件写入并标记为用户设置，来源记为 expanded。
func (s *MemoryStore) SetForced(key, value string) {
	s.set(key, value, OriginExpanded)
}

// SetUser 无条件写入并标记为用户设置，来源记为 define。
func (s *MemoryStore) SetUser(key, value string) {
	s.set(key, value, OriginDefine)
}

func (s *MemoryStore) set(key, value string, origin Origin) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.Value = value
		e.Origin = origin
		e.User = true

		return
	}
	s.insert(key, &Entry{Key: key, Value: value, Origin: origin, User: true})
}

func (s *MemoryStore) insert(key string, e *Entry) {
	s.order = append(s.order, key)
	s.entries[key] = e
}

// IsUserSet 报告 key 是否为用户设置的值。
func (s *MemoryStore) IsUserSet(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	return ok && e.User
}

// Keys 返回插入顺序的 key 快照。
func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}

// Entries 返回插入顺序的记录快照。
func (s *MemoryStore) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, *s.entries[key])
	}

	return out
}

// Len 返回属性数量。
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}
