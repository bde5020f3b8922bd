package configs

type Configs struct {
	// App configuration
	AppName               string  `mapstructure:"app_name"`
	AppEnv                string  `mapstructure:"app_env"`
	AppLogLevel           string  `mapstructure:"app_log_level"`
	AppMetricSamplingRate float64 `mapstructure:"app_metric_sampling_rate"`
	AppPort               int     `mapstructure:"app_port"`

	// Benchmark dataset configuration
	DataDir            string `mapstructure:"data_dir"`
	PrefillDataset     string `mapstructure:"prefill_dataset"`
	DecodeDataset      string `mapstructure:"decode_dataset"`
	DatasetCacheSize   int64  `mapstructure:"dataset_cache_size"`
	DatasetCacheTTLSec int64  `mapstructure:"dataset_cache_ttl_sec"`

	// Leaderboard configuration
	LeaderboardTopN       int     `mapstructure:"leaderboard_top_n"`
	DefaultGpuHourlyPrice float64 `mapstructure:"default_gpu_hourly_price"`

	// MySQL configuration (optional; price books and users)
	MysqlEnabled        bool   `mapstructure:"mysql_enabled"`
	MysqlDbName         string `mapstructure:"mysql_db_name"`
	MysqlMasterHost     string `mapstructure:"mysql_master_host"`
	MysqlMasterPassword string `mapstructure:"mysql_master_password"`
	MysqlMasterPort     int    `mapstructure:"mysql_master_port"`
	MysqlMasterUsername string `mapstructure:"mysql_master_username"`
	MysqlSlaveHost      string `mapstructure:"mysql_slave_host"`
	MysqlSlavePassword  string `mapstructure:"mysql_slave_password"`
	MysqlSlavePort      int    `mapstructure:"mysql_slave_port"`
	MysqlSlaveUsername  string `mapstructure:"mysql_slave_username"`

	// Auth configuration
	JwtSecret      string `mapstructure:"jwt_secret"`
	JwtExpiryHours int    `mapstructure:"jwt_expiry_hours"`
}
