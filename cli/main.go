package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"
)

var app *kingpin.Application
var sum *cliSumCommand
var hmac *cliHMACCommand
var pbkdf2 *cliPBKDF2Command
var hashAlgos *cliHashAlgosCommand
var version *cliVersionCommand

// CLI response for errors
type errorResponse struct {
	ErrorMessage string `json:"error"`
	ExitCode     int    `json:"-"`
}

func (e *errorResponse) Print() int {
	if jsonOutput() {
		fmt.Fprintf(os.Stderr, "%s\n", e.JSON())
	} else {
		fmt.Fprintf(os.Stderr, "%s\n", e.String())
	}
	return e.ExitCode
}

func (e *errorResponse) String() string {
	return `cli: error: ` + e.ErrorMessage
}

func (e *errorResponse) JSON() string {
	jsonBytes, err := json.Marshal(e)
	if err != nil {
		fmt.Fprintf(os.Stderr, "JSON marshalling error: %s", err)
		return ""
	}
	return string(jsonBytes)
}

// jsonOutput reports whether the JSON output mode was requested
// through the environment, before any flag parsing happened
func jsonOutput() bool {
	json, err := envToBool(`DIGESTS_JSON`)
	return err == nil && json
}

func handleError(msg string, code int, jsonOutput bool) int {
	resp := &errorResponse{msg, code}
	if jsonOutput {
		fmt.Fprintf(os.Stderr, "%s\n", resp.JSON())
	} else {
		fmt.Fprintf(os.Stderr, "%s\n", resp.String())
	}
	return code
}

func init() {
	app = kingpin.New("digests", "Compute digests, authentication tags and derived keys.")
	app.Version("1.0.0").Author("meisterluk")
	app.HelpFlag.Short('h')

	sum = newCLISumCommand(app)
	hmac = newCLIHMACCommand(app)
	pbkdf2 = newCLIPBKDF2Command(app)
	hashAlgos = newCLIHashAlgosCommand(app)
	version = newCLIVersionCommand(app)
}

func cli() int {
	subcommand, err := app.Parse(os.Args[1:])
	if err != nil {
		resp := &errorResponse{err.Error(), 1}
		return resp.Print()
	}

	w := &plainOutput{device: os.Stdout}
	logOut := &plainOutput{device: os.Stderr}

	var exitCode int
	var cmdErr error
	var jsonErrors bool

	switch subcommand {
	case sum.cmd.FullCommand():
		settings, err := sum.Validate()
		if err != nil {
			kingpin.FatalUsage(err.Error())
		}
		jsonErrors = settings.JSONOutput
		exitCode, cmdErr = settings.Run(w, logOut)

	case hmac.cmd.FullCommand():
		settings, err := hmac.Validate()
		if err != nil {
			kingpin.FatalUsage(err.Error())
		}
		jsonErrors = settings.JSONOutput
		exitCode, cmdErr = settings.Run(w, logOut)

	case pbkdf2.cmd.FullCommand():
		settings, err := pbkdf2.Validate()
		if err != nil {
			kingpin.FatalUsage(err.Error())
		}
		jsonErrors = settings.JSONOutput
		exitCode, cmdErr = settings.Run(w, logOut)

	case hashAlgos.cmd.FullCommand():
		settings, err := hashAlgos.Validate()
		if err != nil {
			kingpin.FatalUsage(err.Error())
		}
		jsonErrors = settings.JSONOutput
		exitCode, cmdErr = settings.Run(w, logOut)

	case version.cmd.FullCommand():
		settings, err := version.Validate()
		if err != nil {
			kingpin.FatalUsage(err.Error())
		}
		jsonErrors = settings.JSONOutput
		exitCode, cmdErr = settings.Run(w, logOut)

	default:
		kingpin.FatalUsage("unknown command")
	}

	if cmdErr != nil {
		return handleError(cmdErr.Error(), exitCode, jsonErrors)
	}
	return exitCode
}

func main() {
	exitcode := cli()
	os.Exit(exitcode)
}
