package notify

import "testing"

func TestEnvConfigDefaults(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "AKID")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_REGION", "")
	t.Setenv("SES_FROM_EMAIL", "")
	t.Setenv("SES_TO_EMAIL", "ops@example.com")

	cfg, err := EnvConfig()
	if err != nil {
		t.Fatalf("EnvConfig: %v", err)
	}
	if !cfg.Configured() {
		t.Fatalf("expected configured")
	}
	if cfg.Region != DefaultRegion {
		t.Fatalf("region = %q, want %q", cfg.Region, DefaultRegion)
	}
	if cfg.FromAddress != DefaultFromAddress {
		t.Fatalf("from = %q, want default", cfg.FromAddress)
	}
	if cfg.ToAddress != "ops@example.com" {
		t.Fatalf("to = %q", cfg.ToAddress)
	}
}

func TestConfigured(t *testing.T) {
	cases := map[string]struct {
		cfg  Config
		want bool
	}{
		"both":           {cfg: Config{AccessKeyID: "a", SecretAccessKey: "b"}, want: true},
		"missing key":    {cfg: Config{SecretAccessKey: "b"}},
		"missing secret": {cfg: Config{AccessKeyID: "a"}},
		"blank":          {cfg: Config{AccessKeyID: " ", SecretAccessKey: "\t"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := tc.cfg.Configured(); got != tc.want {
				t.Fatalf("Configured() = %v, want %v", got, tc.want)
			}
		})
	}
}
