package router

// InfoResponse is served by /api/v1/info/.
type InfoResponse struct {
	Version   string       `json:"version,omitempty"`
	Commit    string       `json:"commit,omitempty"`
	GoVersion string       `json:"goVersion"`
	Hostname  string       `json:"hostname,omitempty"`
	Uptime    string       `json:"uptime"`
	Runtime   RuntimeInfo  `json:"runtime"`
	Database  DatabaseInfo `json:"database"`
}

type RuntimeInfo struct {
	Goroutines     int    `json:"goroutines"`
	HeapAllocBytes uint64 `json:"heapAllocBytes"`
	SysBytes       uint64 `json:"sysBytes"`
}

type DatabaseInfo struct {
	Healthy bool    `json:"healthy"`
	Error   *string `json:"error,omitempty"`

	Migration *MigrationInfo `json:"migration,omitempty"`
	Pool      *PoolInfo      `json:"pool,omitempty"`
}

type MigrationInfo struct {
	Version uint    `json:"version"`
	Dirty   bool    `json:"dirty"`
	Error   *string `json:"error,omitempty"`
}

// PoolInfo describes the pgx pool used for bulk inserts and cache invalidation.
type PoolInfo struct {
	TotalConns    int32 `json:"totalConns"`
	IdleConns     int32 `json:"idleConns"`
	AcquiredConns int32 `json:"acquiredConns"`
	MaxConns      int32 `json:"maxConns"`
}
