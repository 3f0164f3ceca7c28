package simcli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"epsilon/app"
	"epsilon/hal"
)

// Config is the resolved simulator configuration.
type Config struct {
	Seed         uint64
	ExternalData string
	Brightness   uint8
	Release      bool
	Rects        int

	Scale      int
	Hz         int
	Ticks      uint64
	Screenshot string
}

func newViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("toml")
		v.SetConfigName(".eadksim")
	}
	v.SetEnvPrefix("eadk")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// bindFlags copies config and environment values into flags the user did
// not set. Explicit flags win.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || f.Name == "config" || !v.IsSet(f.Name) {
			return
		}
		if serr := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); serr != nil {
			err = fmt.Errorf("flag %s from config: %w", f.Name, serr)
		}
	})
	return err
}

func configFromFlags(fs *pflag.FlagSet) (Config, error) {
	var cfg Config
	var err error
	get := func(fn func() error) {
		if err == nil {
			err = fn()
		}
	}
	get(func() (e error) { cfg.Seed, e = fs.GetUint64("seed"); return })
	get(func() (e error) { cfg.ExternalData, e = fs.GetString("external-data"); return })
	get(func() (e error) { cfg.Brightness, e = fs.GetUint8("brightness"); return })
	get(func() (e error) { cfg.Release, e = fs.GetBool("release"); return })
	get(func() (e error) { cfg.Rects, e = fs.GetInt("rects"); return })
	if fs.Lookup("scale") != nil {
		get(func() (e error) { cfg.Scale, e = fs.GetInt("scale"); return })
	}
	if fs.Lookup("hz") != nil {
		get(func() (e error) { cfg.Hz, e = fs.GetInt("hz"); return })
	}
	if fs.Lookup("ticks") != nil {
		get(func() (e error) { cfg.Ticks, e = fs.GetUint64("ticks"); return })
	}
	if fs.Lookup("screenshot") != nil {
		get(func() (e error) { cfg.Screenshot, e = fs.GetString("screenshot"); return })
	}
	return cfg, err
}

// hostConfig loads the external data file and builds the HAL settings.
func (c Config) hostConfig() (hal.HostConfig, error) {
	data, err := hal.LoadExternalData(c.ExternalData)
	if err != nil {
		return hal.HostConfig{}, err
	}
	return hal.HostConfig{
		Seed:         c.Seed,
		ExternalData: data,
		Brightness:   c.Brightness,
	}, nil
}

func (c Config) appConfig() app.Config {
	return app.Config{Release: c.Release, Rects: c.Rects}
}
