package domain

// AssetSet is an ordered mapping from asset key to asset. Iteration follows the
// order in which keys were first added.
type AssetSet struct {
	keys  []string
	items map[string]Asset
}

func NewAssetSet() *AssetSet {
	return &AssetSet{items: make(map[string]Asset)}
}

// Add stores the asset under key. Re-adding a key replaces the asset but keeps
// its original position.
func (s *AssetSet) Add(key string, asset Asset) {
	if s.items == nil {
		s.items = make(map[string]Asset)
	}
	if _, exists := s.items[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.items[key] = asset
}

func (s *AssetSet) Get(key string) (Asset, bool) {
	if s == nil {
		return Asset{}, false
	}
	a, ok := s.items[key]
	return a, ok
}

func (s *AssetSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

func (s *AssetSet) Keys() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.keys...)
}

// Each visits assets in insertion order until fn returns false.
func (s *AssetSet) Each(fn func(key string, asset Asset) bool) {
	if s == nil {
		return
	}
	for _, k := range s.keys {
		if !fn(k, s.items[k]) {
			return
		}
	}
}
