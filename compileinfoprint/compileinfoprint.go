// compileinfoprint is imported by the commands for the side effect of
// printing their build information to os.Stderr at startup.
package compileinfoprint

import "github.com/carbocation/bccount/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
