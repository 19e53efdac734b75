package set

import "godis-dict/datastruct/dict"

type Consumer func(string) bool

// HashSet 以 ChainedDictionary 的键保存成员
type HashSet struct {
	m *dict.ChainedDictionary[string, struct{}]
}

func NewHashSet(members ...string) *HashSet {
	res := &HashSet{m: dict.NewChainedDictionary[string, struct{}]()}
	for _, str := range members {
		res.Add(str)
	}
	return res
}

func (s *HashSet) Size() int {
	return s.m.Size()
}

// Add 返回 val 是否是新加入的成员
func (s *HashSet) Add(val string) (ok bool) {
	if s.m.ContainsKey(val) {
		return false
	}
	s.m.Put(val, struct{}{})
	return true
}

func (s *HashSet) Contains(val string) bool {
	return s.m.ContainsKey(val)
}

func (s *HashSet) Remove(val string) (ok bool) {
	_, err := s.m.Remove(val)
	return err == nil
}

func (s *HashSet) ForEach(c Consumer) {
	s.m.ForEach(func(key string, _ struct{}) bool {
		return c(key)
	})
}

func (s *HashSet) Members() []string {
	return s.m.Keys()
}

func (s *HashSet) Intersect(s1 *HashSet) *HashSet {
	if s == nil {
		panic("HashSet is nil")
	}
	res := NewHashSet()
	s.ForEach(func(member string) bool {
		if s1.Contains(member) {
			res.Add(member)
		}
		return true
	})
	return res
}

func (s *HashSet) Union(s1 *HashSet) *HashSet {
	if s == nil {
		panic("HashSet is nil")
	}
	res := NewHashSet()
	addFunc := func(member string) bool {
		res.Add(member)
		return true
	}
	s.ForEach(addFunc)
	s1.ForEach(addFunc)
	return res
}

func (s *HashSet) Diff(s1 *HashSet) *HashSet {
	if s == nil {
		panic("HashSet is nil")
	}
	res := NewHashSet()
	s.ForEach(func(member string) bool {
		if !s1.Contains(member) {
			res.Add(member)
		}
		return true
	})
	return res
}
