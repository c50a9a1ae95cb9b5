package env

type NetEnvironment struct {
	HttpHost      string `validate:"required,lowercase"`
	HttpPort      string `validate:"required,numeric"`
	AllowedOrigin string `validate:"required,url"`
}

func (e NetEnvironment) GetHttpPort() string {
	return e.HttpPort
}

func (e NetEnvironment) GetHttpHost() string {
	return e.HttpHost
}

func (e NetEnvironment) GetHostURL() string {
	return e.HttpHost + ":" + e.HttpPort
}
