package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/meisterluk/digests-go/internals"
	"gopkg.in/alecthomas/kingpin.v2"
)

// cliSumCommand defines the CLI arguments as kingpin requires them
type cliSumCommand struct {
	cmd           *kingpin.CmdClause
	Files         *[]string
	HashAlgorithm *string
	Key           *string
	Length        *int
	Seed          *int64
	SeedHigh      *int64
	ConfigOutput  *bool
	JSONOutput    *bool
}

func newCLISumCommand(app *kingpin.Application) *cliSumCommand {
	c := new(cliSumCommand)
	c.cmd = app.Command("sum", "Compute the digest of files or standard input.")

	c.Files = c.cmd.Arg("file", "files to digest; stdin if none is given").Strings()
	c.HashAlgorithm = c.cmd.Flag("algorithm", "hash algorithm to use").Default(envOr("DIGESTS_ALGORITHM", "")).Short('a').String()
	c.Key = c.cmd.Flag("key", "BLAKE2b key as hexadecimal string, up to 64 bytes").String()
	c.Length = c.cmd.Flag("length", "BLAKE2b digest length in bytes, 1..64").Default("64").Int()
	c.Seed = c.cmd.Flag("seed", "xxHash seed; the low 32 bits for xxhash64").Default("0").Int64()
	c.SeedHigh = c.cmd.Flag("seed-high", "high 32 bits of the xxhash64 seed").Default("0").Int64()
	c.ConfigOutput = c.cmd.Flag("config", "only prints the configuration and terminates").Bool()
	c.JSONOutput = c.cmd.Flag("json", "return output as JSON, not as plain text").Bool()

	return c
}

// SumCommand defines the CLI command parameters
type SumCommand struct {
	Files         []string `json:"files"`
	HashAlgorithm string   `json:"hash-algorithm"`
	Key           string   `json:"key"`
	Length        int      `json:"length"`
	Seed          uint32   `json:"seed"`
	SeedHigh      uint32   `json:"seed-high"`
	ConfigOutput  bool     `json:"config"`
	JSONOutput    bool     `json:"json"`
}

func (c *cliSumCommand) Validate() (*SumCommand, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	// migrate cliSumCommand to SumCommand
	cmd := new(SumCommand)
	cmd.Files = append(cmd.Files, (*c.Files)...)
	cmd.HashAlgorithm = *c.HashAlgorithm
	cmd.Key = *c.Key
	cmd.Length = *c.Length
	cmd.ConfigOutput = *c.ConfigOutput
	cmd.JSONOutput = *c.JSONOutput || cfg.JSONOutput

	// defaults from the config file, then the compiled-in default
	if cmd.HashAlgorithm == "" {
		cmd.HashAlgorithm = cfg.Algorithm
	}
	if cmd.HashAlgorithm == "" {
		cmd.HashAlgorithm = defaultHashAlgorithm
	}

	if *c.Seed < 0 || *c.Seed > 0xffffffff {
		return nil, fmt.Errorf(`--seed must be within 0..4294967295, got %d`, *c.Seed)
	}
	if *c.SeedHigh < 0 || *c.SeedHigh > 0xffffffff {
		return nil, fmt.Errorf(`--seed-high must be within 0..4294967295, got %d`, *c.SeedHigh)
	}
	cmd.Seed = uint32(*c.Seed)
	cmd.SeedHigh = uint32(*c.SeedHigh)

	// handle environment variables
	envJSON, errJSON := envToBool("DIGESTS_JSON")
	if errJSON == nil {
		cmd.JSONOutput = envJSON
	}

	return cmd, nil
}

// newDigester builds the Digester matching the parameter set
func (c *SumCommand) newDigester(algo internals.HashAlgo) (*internals.Digester, error) {
	switch algo {
	case internals.HashBlake2b:
		key, err := decodeHexArg(`key`, c.Key)
		if err != nil {
			return nil, err
		}
		return internals.NewBlake2b(c.Length, key)
	case internals.HashXXHash32:
		return internals.NewXXHash32(c.Seed), nil
	case internals.HashXXHash64:
		return internals.NewXXHash64(c.Seed, c.SeedHigh), nil
	}
	return algo.New(), nil
}

// Run executes the CLI command sum on the given parameter set,
// writes the result to Output w and error/information messages to log.
// It returns a pair (exit code, error)
func (c *SumCommand) Run(w Output, log Output) (int, error) {
	if c.ConfigOutput {
		// config output is printed in JSON independent of c.JSONOutput
		b, err := json.Marshal(c)
		if err != nil {
			return 6, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return 0, nil
	}

	algo, err := internals.HashAlgorithmFromString(c.HashAlgorithm)
	if err != nil {
		return 1, err
	}

	digester, err := c.newDigester(algo)
	if err != nil {
		return 1, err
	}

	type fileDigest struct {
		Path   string `json:"path"`
		Digest string `json:"digest"`
	}
	results := make([]fileDigest, 0, len(c.Files)+1)

	if len(c.Files) == 0 {
		digester.Init()
		chunk := make([]byte, 64*1024)
		for {
			n, err := os.Stdin.Read(chunk)
			if n > 0 {
				if uerr := digester.Update(chunk[:n]); uerr != nil {
					return 2, uerr
				}
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				return 2, err
			}
		}
		digest, err := digester.HexDigest()
		if err != nil {
			return 2, err
		}
		results = append(results, fileDigest{Path: `-`, Digest: digest})
	} else {
		for _, path := range c.Files {
			digester.Init()
			if err := digester.ReadFile(path); err != nil {
				return 2, err
			}
			digest, err := digester.HexDigest()
			if err != nil {
				return 2, err
			}
			results = append(results, fileDigest{Path: path, Digest: digest})
		}
	}

	if c.JSONOutput {
		b, err := json.Marshal(results)
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(b))
	} else {
		for _, r := range results {
			w.PrintDigestLine(r.Digest, r.Path)
		}
	}
	return 0, nil
}
