package kb

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Init sets up viper and logging for the named program.  An empty
// configFile selects the default search path.
func Init(name, version, configFile string) {
	viper.SetEnvPrefix(strings.ToUpper(name))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		configDir, err := os.UserConfigDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(configDir, name))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	err := viper.ReadInConfig()
	if err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && configFile != "" {
			log.Fatalf("failed reading config %s: %v", configFile, err)
		}
	}
	logFile := ViperGetString("logfile")
	if logFile != "" {
		fp, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			log.Fatalf("failed opening logfile %s: %v", logFile, err)
		}
		log.SetOutput(fp)
	}
	ViperSetDefault("version", version)
	ViperInit(viperPrefix)
}
