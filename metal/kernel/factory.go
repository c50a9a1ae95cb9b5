package kernel

import (
	"log"
	"strconv"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/metal/env"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/auth"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/llogs"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/mail"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

func MakeSentry(env *env.Environment) *portal.Sentry {
	cOptions := sentry.ClientOptions{
		Dsn:         env.Sentry.DSN,
		Environment: env.App.Type,
	}

	if err := sentry.Init(cOptions); err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}

	options := sentryhttp.Options{}
	handler := sentryhttp.New(options)

	return &portal.Sentry{
		Handler: handler,
		Options: &options,
		Env:     env,
	}
}

func MakeDbConnection(env *env.Environment) *database.Connection {
	dbConn, err := database.MakeConnection(env)

	if err != nil {
		panic("Sql: error connecting to PostgresSQL: " + err.Error())
	}

	return dbConn
}

func MakeLogs(env *env.Environment) llogs.Driver {
	lDriver, err := llogs.MakeFilesLogs(env)

	if err != nil {
		panic("logs: error opening logs file: " + err.Error())
	}

	return lDriver
}

func MakeMailService(env *env.Environment) *mail.Service {
	sender := mail.MakeResendSender(env.Mail.APIKey)

	return mail.MakeService(sender, &env.Mail)
}

func MakeAuthProvider(env *env.Environment) *auth.Provider {
	return auth.MakeProvider(&env.Auth)
}

func MakeEnv(validate *portal.Validator) *env.Environment {
	errorSuffix := "Environment: "

	port, err := strconv.Atoi(env.GetEnvVar("ENV_DB_PORT"))
	if err != nil {
		panic(errorSuffix + "invalid value for ENV_DB_PORT: " + err.Error())
	}

	app := env.AppEnvironment{
		Name: env.GetEnvVar("ENV_APP_NAME"),
		URL:  env.GetEnvVar("ENV_APP_URL"),
		Type: env.GetEnvVar("ENV_APP_ENV_TYPE"),
	}

	db := env.DBEnvironment{
		UserName:     env.GetSecretOrEnv("pg_username", "ENV_DB_USER_NAME"),
		UserPassword: env.GetSecretOrEnv("pg_password", "ENV_DB_USER_PASSWORD"),
		DatabaseName: env.GetSecretOrEnv("pg_dbname", "ENV_DB_DATABASE_NAME"),
		Port:         port,
		Host:         env.GetEnvVar("ENV_DB_HOST"),
		DriverName:   database.DriverName,
		SSLMode:      env.GetEnvVar("ENV_DB_SSL_MODE"),
		TimeZone:     env.GetEnvVar("ENV_DB_TIMEZONE"),
	}

	logsEnv := env.LogsEnvironment{
		Level:      env.GetEnvVar("ENV_APP_LOG_LEVEL"),
		Dir:        env.GetEnvVar("ENV_APP_LOGS_DIR"),
		DateFormat: env.GetEnvVar("ENV_APP_LOGS_DATE_FORMAT"),
	}

	netEnv := env.NetEnvironment{
		HttpHost:      env.GetEnvVar("ENV_HTTP_HOST"),
		HttpPort:      env.GetEnvVar("ENV_HTTP_PORT"),
		AllowedOrigin: env.GetEnvVar("ENV_HTTP_ALLOWED_ORIGIN"),
	}

	sentryEnv := env.SentryEnvironment{
		DSN: env.GetEnvVar("ENV_SENTRY_DSN"),
		CSP: env.GetEnvVar("ENV_SENTRY_CSP"),
	}

	mailEnv := env.MailEnvironment{
		APIKey:         env.GetSecretOrEnv("resend_api_key", "ENV_MAIL_API_KEY"),
		From:           env.GetEnvVar("ENV_MAIL_FROM"),
		ReplyTo:        env.GetEnvVar("ENV_MAIL_REPLY_TO"),
		HelpInbox:      env.GetEnvVar("ENV_MAIL_HELP_INBOX"),
		SubscribeInbox: env.GetEnvVar("ENV_MAIL_SUBSCRIBE_INBOX"),
		InterestedPlan: env.GetEnvVar("ENV_MAIL_INTERESTED_PLAN"),
	}

	authEnv := env.AuthEnvironment{
		BaseURL:    env.GetEnvVar("ENV_AUTH_BASE_URL"),
		ServiceKey: env.GetSecretOrEnv("auth_service_key", "ENV_AUTH_SERVICE_KEY"),
	}

	if rejected, fields := validate.Rejects(app); rejected {
		panic(errorSuffix + "invalid [APP] model: " + portal.ErrorsAsJson(fields))
	}

	if rejected, fields := validate.Rejects(db); rejected {
		panic(errorSuffix + "invalid [Sql] model: " + portal.ErrorsAsJson(fields))
	}

	if rejected, fields := validate.Rejects(logsEnv); rejected {
		panic(errorSuffix + "invalid [logs Credentials] model: " + portal.ErrorsAsJson(fields))
	}

	if rejected, fields := validate.Rejects(netEnv); rejected {
		panic(errorSuffix + "invalid [NETWORK] model: " + portal.ErrorsAsJson(fields))
	}

	if rejected, fields := validate.Rejects(sentryEnv); rejected {
		panic(errorSuffix + "invalid [SENTRY] model: " + portal.ErrorsAsJson(fields))
	}

	if rejected, fields := validate.Rejects(mailEnv); rejected {
		panic(errorSuffix + "invalid [MAIL] model: " + portal.ErrorsAsJson(fields))
	}

	if rejected, fields := validate.Rejects(authEnv); rejected {
		panic(errorSuffix + "invalid [AUTH] model: " + portal.ErrorsAsJson(fields))
	}

	site := &env.Environment{
		App:     app,
		DB:      db,
		Logs:    logsEnv,
		Network: netEnv,
		Sentry:  sentryEnv,
		Mail:    mailEnv,
		Auth:    authEnv,
	}

	if rejected, fields := validate.Rejects(site); rejected {
		panic(errorSuffix + "invalid [SITE] model: " + portal.ErrorsAsJson(fields))
	}

	return site
}
