package structs

type EnviromentModel struct {
	Database         DatabaseModel
	ConcurrentAmount int
	RabbitMQ         RabbitMQModel
	Log              LogModel
	Email            EmailModel
	Server           ServerModel
	Router           RouterModel
}

type ServerModel struct {
	Timezone      string
	Dev           bool
	DevServerHost string
	StaticDir     string
}

type DatabaseModel struct {
	Client      string
	MaxIdle     uint
	MaxLifeTime string
	MaxOpenConn uint
	User        string
	Password    string
	Host        string
	Db          string
	Params      string
	Port        string
	LogEnable   int
}

type RabbitMQModel struct {
	Enable int
	Domain string
	Queue  string
}

type LogModel struct {
	ElkEnable      int
	ElkIndex       string
	ElkURL         string
	LogstashEnable int
	LogstashURL    string
}

type EmailModel struct {
	APIUrl string
}

type RouterModel struct {
	Port int
}
