package mutex

import "sync"

// KeyedMutex serializes work per post ID, so two toggles of the same post
// cannot interleave their read-then-call sequence.
type KeyedMutex struct {
	muMap sync.Map
}

func (km *KeyedMutex) Lock(key int64) {
	mu, _ := km.muMap.LoadOrStore(key, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
}

func (km *KeyedMutex) Unlock(key int64) {
	mu, ok := km.muMap.Load(key)
	if ok {
		mu.(*sync.Mutex).Unlock()
		km.muMap.Delete(key)
	}
}
