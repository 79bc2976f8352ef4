package event

// InvalidateAllCacheEvent asks every instance to drop its in-memory caches.
// Origin identifies the publishing instance so it can skip its own message.
type InvalidateAllCacheEvent struct {
	Origin string `json:"origin"`
}

func (e InvalidateAllCacheEvent) Type() string {
	return InvalidateAllCacheEventType
}
