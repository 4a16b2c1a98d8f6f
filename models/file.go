package models

// FileResponse describes a stored file returned by the upload endpoints.
type FileResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// RedisMonitorInfo is the payload of the cache monitor endpoint. The gateway
// has no cache, so it always reports a disconnected mock.
type RedisMonitorInfo struct {
	Info      string `json:"info"`
	Connected bool   `json:"connected"`
}
