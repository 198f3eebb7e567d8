package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
	// 管理端 datetime-local 控件提交的格式
	LocalInputFormat = "2006-01-02T15:04"
)

// 分页
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// gin 上下文中保存登录用户的键
const ContextUserKey = "user"
