// Package debug prints trace lines to stderr when the verbose flag is
// set, keeping them off stdout where the catalog and prompts live.
package debug

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

func Debugf(format string, a ...interface{}) {
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, format+"\n", a...)
	}
}
