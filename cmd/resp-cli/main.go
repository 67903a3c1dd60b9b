// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command resp-cli is a minimal interactive REPL over respkit: it dials a
// Redis-protocol server, optionally negotiates HELLO, and then reads
// shell-quoted commands from stdin, printing the raw frame each reply
// decodes to.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"code.hybscloud.com/respkit"
	"code.hybscloud.com/respkit/config"
	"code.hybscloud.com/respkit/internal/log"
)

var (
	version = "dev"
	commit  = "unknown"
)

var (
	flagConfig   string
	flagEnv      string
	flagAddr     string
	flagUsername string
	flagProto    int
	flagAskPass  bool
)

var rootCmd = &cobra.Command{
	Use:     "resp-cli",
	Short:   "Interactive REPL for a RESP2/RESP3 server",
	Version: fmt.Sprintf("%s (commit: %s)", version, commit),
	RunE:    run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "YAML config file path")
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", ".env", "dotenv file path")
	rootCmd.PersistentFlags().StringVar(&flagAddr, "addr", "", "server address (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagUsername, "user", "u", "", "username for HELLO AUTH")
	rootCmd.PersistentFlags().IntVar(&flagProto, "proto", 0, "RESP protocol version to request via HELLO (2 or 3, 0 to skip)")
	rootCmd.PersistentFlags().BoolVarP(&flagAskPass, "password", "p", false, "prompt for a password and send HELLO AUTH")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotenv(flagEnv); err != nil {
		return fmt.Errorf("loading %s: %w", flagEnv, err)
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	config.LoadEnvOverrides(cfg)
	if flagAddr != "" {
		cfg.Server.Address = flagAddr
	}

	logger := log.New()
	defer logger.Sync()

	client, err := respkit.Dial(context.Background(), cfg.Addr(), respkit.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("dial %s: %w", cfg.Addr(), err)
	}
	defer client.Close()

	username := flagUsername
	if username == "" {
		username = cfg.Auth.Username
	}
	proto := flagProto
	if proto == 0 {
		proto = cfg.Auth.Protocol
	}

	if flagAskPass || username != "" || proto != 0 {
		password := ""
		if flagAskPass {
			password, err = readPassword()
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
		}
		greeting, err := client.Hello(uint8(proto), username, password)
		if err != nil {
			return fmt.Errorf("HELLO: %w", err)
		}
		logger.Info("negotiated session", zap.Int("server_reported_fields", len(greeting)))
	}

	return repl(client)
}

// readPassword prompts on stderr and reads a password without echoing it
// to the terminal.
func readPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type inlineCommand struct{ frame *respkit.Frame }

func (c inlineCommand) Frame() *respkit.Frame { return c.frame }

func repl(client *respkit.Client) error {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprint(os.Stderr, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			fields, err := splitShellWords(line)
			if err != nil {
				fmt.Fprintln(os.Stderr, "(error)", err)
				fmt.Fprint(os.Stderr, "> ")
				continue
			}
			if len(fields) > 0 {
				fields[0] = strings.ToUpper(fields[0])
			}
			children := make([]*respkit.Frame, len(fields))
			for i, f := range fields {
				children[i] = respkit.NewBulkStringFrom(f)
			}
			resp, err := client.Do(inlineCommand{frame: respkit.NewArray(children...)})
			if err != nil {
				fmt.Fprintln(os.Stderr, "(error)", err)
			} else {
				printFrame(resp, 0)
			}
		}
		fmt.Fprint(os.Stderr, "> ")
	}
	return scanner.Err()
}

// splitShellWords tokenizes line the way a POSIX shell word-splits a
// simple command: runs of whitespace separate words, and single or double
// quotes group an embedded run of whitespace into one word. Backslash
// escapes the following character inside double quotes and outside
// quotes; it is literal inside single quotes. An unterminated quote is a
// reported error rather than a silently truncated word.
func splitShellWords(line string) ([]string, error) {
	var words []string
	var cur strings.Builder
	inWord := false
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t':
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
			i++
		case c == '\'':
			inWord = true
			j := strings.IndexByte(line[i+1:], '\'')
			if j < 0 {
				return nil, fmt.Errorf("unterminated ' quote")
			}
			cur.WriteString(line[i+1 : i+1+j])
			i += j + 2
		case c == '"':
			inWord = true
			i++
			for {
				if i >= len(line) {
					return nil, fmt.Errorf("unterminated \" quote")
				}
				if line[i] == '"' {
					i++
					break
				}
				if line[i] == '\\' && i+1 < len(line) {
					cur.WriteByte(line[i+1])
					i += 2
					continue
				}
				cur.WriteByte(line[i])
				i++
			}
		case c == '\\' && i+1 < len(line):
			inWord = true
			cur.WriteByte(line[i+1])
			i += 2
		default:
			inWord = true
			cur.WriteByte(c)
			i++
		}
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words, nil
}

func printFrame(f *respkit.Frame, depth int) {
	indent := strings.Repeat("  ", depth)
	switch f.Kind {
	case respkit.KindSimpleString:
		fmt.Printf("%s+%s\n", indent, f.Str)
	case respkit.KindSimpleError:
		fmt.Printf("%s-%s\n", indent, f.Str)
	case respkit.KindBulkError:
		fmt.Printf("%s!%s\n", indent, f.Str)
	case respkit.KindInteger:
		fmt.Printf("%s(integer) %d\n", indent, f.Int)
	case respkit.KindBulkString:
		fmt.Printf("%s%q\n", indent, f.Str)
	case respkit.KindNull:
		fmt.Printf("%s(nil)\n", indent)
	case respkit.KindBoolean:
		fmt.Printf("%s%v\n", indent, f.Bool)
	case respkit.KindDouble:
		fmt.Printf("%s(double) %v\n", indent, f.Dbl)
	case respkit.KindBigNumber:
		sign := ""
		if f.Big.Negative {
			sign = "-"
		}
		fmt.Printf("%s(big number) %s%s\n", indent, sign, f.Big.Digits)
	case respkit.KindVerbatimString:
		fmt.Printf("%s%s:%q\n", indent, f.VerbatimEncoding[:], f.Str)
	case respkit.KindArray, respkit.KindSet, respkit.KindPush:
		fmt.Printf("%s%d) %s\n", indent, len(f.Array), f.Kind)
		for _, child := range f.Array {
			printFrame(child, depth+1)
		}
	case respkit.KindMap:
		fmt.Printf("%smap, %d pairs\n", indent, len(f.Map))
		for _, pair := range f.Map {
			printFrame(pair.Key, depth+1)
			printFrame(pair.Value, depth+1)
		}
	}
}
