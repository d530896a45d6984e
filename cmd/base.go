// Package cmd is the base package for the executables built from go-subxt.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"reflect"
	"sync"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	bc "github.com/spacemeshos/go-subxt/config"
	"github.com/spacemeshos/go-subxt/log"
)

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version string

	// Branch is the git branch used to build the App. Designed to be overwritten by make.
	Branch string

	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

var (
	mu                      sync.RWMutex
	globalCtx, globalCancel = context.WithCancel(context.Background())
)

// Ctx returns global context.
func Ctx() context.Context {
	mu.RLock()
	defer mu.RUnlock()

	return globalCtx
}

// Cancel returns global cancellation function.
func Cancel() func() {
	mu.RLock()
	defer mu.RUnlock()

	return globalCancel
}

// BaseApp is the base application command, provides basic init and flags for all executables.
type BaseApp struct {
	Config *bc.Config
}

// NewBaseApp returns new basic application.
func NewBaseApp() *BaseApp {
	dc := bc.DefaultConfig()
	return &BaseApp{Config: &dc}
}

// Initialize loads config, sets logger and listens to Ctrl ^C.
func (app *BaseApp) Initialize(cmd *cobra.Command) error {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)

	go func() {
		for range signalChan {
			log.Info("Received an interrupt, stopping...")

			Cancel()()
		}
	}()

	conf, err := parseConfig()
	if err != nil {
		return err
	}

	app.Config = conf
	if err := EnsureCLIFlags(cmd, app.Config); err != nil {
		return err
	}
	if err := app.Config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return setupLogging(app.Config)
}

// Logger returns a logger for the named component with the level from the config.
func (app *BaseApp) Logger(component string) log.Log {
	lvl, err := app.Config.LOGGING.ComponentLevel(component)
	if err != nil {
		// levels were checked by Validate
		lvl = zap.WarnLevel
	}
	return log.NewWithLevel(component, zap.NewAtomicLevelAt(lvl), log.Encoder(app.Config.LOGGING.Encoder))
}

func setupLogging(config *bc.Config) error {
	lvl, err := config.LOGGING.Level()
	if err != nil {
		return err
	}
	log.SetupGlobal(log.NewWithLevel("subxt", zap.NewAtomicLevelAt(lvl), log.Encoder(config.LOGGING.Encoder)))
	return nil
}

func parseConfig() (*bc.Config, error) {
	fileLocation := viper.GetString("config")
	vip := viper.New()
	// read in default config if passed as param using viper
	if err := bc.LoadConfig(fileLocation, vip); err != nil {
		log.Debug("couldn't load config file at location: %s switching to defaults: %v", fileLocation, err)
	}

	conf := bc.DefaultConfig()
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)

	// load config if it was loaded to our viper
	if err := vip.Unmarshal(&conf, viper.DecodeHook(hook)); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &conf, nil
}

// EnsureCLIFlags checks flag types and converts them.
// Flags of a nested section are named after the section tag followed by the field tag.
func EnsureCLIFlags(cmd *cobra.Command, appCFG *bc.Config) error {
	assignFields := func(p reflect.Type, elem reflect.Value, prefix, name string) bool {
		for i := 0; i < p.NumField(); i++ {
			if prefix+p.Field(i).Tag.Get("mapstructure") != name {
				continue
			}
			var val any
			if p.Field(i).Type == reflect.TypeOf(time.Duration(0)) {
				elem.Field(i).Set(reflect.ValueOf(viper.GetDuration(name)))
				return true
			}
			switch p.Field(i).Type.Kind() {
			case reflect.Bool:
				val = viper.GetBool(name)
			case reflect.String:
				val = viper.GetString(name)
			case reflect.Int:
				val = viper.GetInt(name)
			case reflect.Uint32:
				val = viper.GetUint32(name)
			case reflect.Slice:
				val = viper.GetStringSlice(name)
			default:
				return false
			}
			elem.Field(i).Set(reflect.ValueOf(val).Convert(p.Field(i).Type))
			return true
		}
		return false
	}

	// viper can't handle nested structs when deserialize, so every section is visited explicitly
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		name := f.Name
		_ = assignFields(reflect.TypeOf(appCFG.BaseConfig), reflect.ValueOf(&appCFG.BaseConfig).Elem(), "", name) ||
			assignFields(reflect.TypeOf(appCFG.LOGGING), reflect.ValueOf(&appCFG.LOGGING).Elem(), "", name) ||
			assignFields(reflect.TypeOf(appCFG.Push), reflect.ValueOf(&appCFG.Push).Elem(), "metrics-push-", name)
	})
	return nil
}
