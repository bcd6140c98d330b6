package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbeaudouin05/stripe-relay/api/errs"
)

// isolate runs the test from an empty temp dir with a clean Stripe environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	for _, k := range []string{
		"STRIPE_SECRET_KEY", "STRIPE_WEBHOOK_SECRET", "STRIPE_API_URL",
		"STRIPE_WEBHOOK_IGNORE_API_VERSION", "DATABASE_URL", "PORT", "GRPC_PORT", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func TestLoadConfig_MissingSecretKey(t *testing.T) {
	isolate(t)
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")

	_, err := LoadConfigFrom(viper.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConfig)
	assert.Contains(t, err.Error(), "Stripe Secret Key")
}

func TestLoadConfig_MissingWebhookSecret(t *testing.T) {
	isolate(t)
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

	_, err := LoadConfigFrom(viper.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConfig)
	assert.Contains(t, err.Error(), "Stripe Webhook Secret")
}

func TestLoadConfig_RejectsMalformedKeys(t *testing.T) {
	isolate(t)
	t.Setenv("STRIPE_SECRET_KEY", "pk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")

	_, err := LoadConfigFrom(viper.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConfig)

	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "secret")
	_, err = LoadConfigFrom(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "whsec_")
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")

	cfg, err := LoadConfigFrom(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "sk_test_123", cfg.StripeSecretKey)
	assert.Equal(t, "whsec_test", cfg.StripeWebhookSecret)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "50051", cfg.GRPCPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.StripeIgnoreAPIVersion)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadConfig_ReadsDotEnvFromParentDir(t *testing.T) {
	dir := isolate(t)
	// t.Setenv("", ...) above leaves the variables set to empty; unset them so .env applies.
	os.Unsetenv("STRIPE_SECRET_KEY")
	os.Unsetenv("STRIPE_WEBHOOK_SECRET")
	os.Unsetenv("STRIPE_WEBHOOK_IGNORE_API_VERSION")
	t.Cleanup(func() {
		os.Unsetenv("STRIPE_SECRET_KEY")
		os.Unsetenv("STRIPE_WEBHOOK_SECRET")
		os.Unsetenv("STRIPE_WEBHOOK_IGNORE_API_VERSION")
	})

	env := "STRIPE_SECRET_KEY=sk_test_dotenv\nSTRIPE_WEBHOOK_SECRET=whsec_dotenv\nSTRIPE_WEBHOOK_IGNORE_API_VERSION=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	sub := filepath.Join(dir, "nested", "pkg")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.Chdir(sub))

	cfg, err := LoadConfigFrom(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "sk_test_dotenv", cfg.StripeSecretKey)
	assert.Equal(t, "whsec_dotenv", cfg.StripeWebhookSecret)
	assert.True(t, cfg.StripeIgnoreAPIVersion)
}

func TestLoadConfig_FlagOverridesViaViper(t *testing.T) {
	isolate(t)
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")

	v := viper.New()
	v.Set("PORT", "9090")
	v.Set("LOG_LEVEL", "debug")

	cfg, err := LoadConfigFrom(v)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestCheckNotProdDB(t *testing.T) {
	assert.Error(t, CheckNotProdDB(""))
	assert.Error(t, CheckNotProdDB("postgres://u:p@old-cloud.example/db"))
	assert.NoError(t, CheckNotProdDB("postgres://u:p@localhost/test"))
}

func TestCheckNotLiveKey(t *testing.T) {
	assert.Error(t, CheckNotLiveKey("sk_live_abc"))
	assert.Error(t, CheckNotLiveKey("rk_live_abc"))
	assert.NoError(t, CheckNotLiveKey("sk_test_abc"))
}
