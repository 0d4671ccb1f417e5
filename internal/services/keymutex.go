package services

import "sync"

// keyedMutex serializes work per string key. The chat service locks on
// the user ID so two concurrent requests for the same user can not
// both observe the last unit of quota; requests for different users
// never contend.
type keyedMutex struct {
	locks sync.Map // key -> *sync.Mutex
}

func (k *keyedMutex) Lock(key string) {
	m, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	m.(*sync.Mutex).Lock()
}

func (k *keyedMutex) Unlock(key string) {
	m, ok := k.locks.Load(key)
	if !ok {
		return
	}
	m.(*sync.Mutex).Unlock()
}
