package command

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"

	"golang.org/x/term"

	"github.com/stolasapp/basicauth/internal/config"
)

type configKey struct{}

// prompt writes the prompt to out only when in is an interactive terminal, and
// masks the typed input when requested.
func prompt(in io.Reader, out io.Writer, prompt string, mask bool) ([]byte, error) {
	file, ok := in.(*os.File)
	tty := ok && term.IsTerminal(int(file.Fd()))
	if tty {
		if _, err := io.WriteString(out, prompt); err != nil {
			return nil, err
		}
		if mask {
			line, err := term.ReadPassword(int(file.Fd()))
			_, _ = io.WriteString(out, "\n")
			return line, err
		}
	}
	return readLine(in)
}

// cloned from term.readPasswordLine.
func readLine(in io.Reader) ([]byte, error) {
	var buf [1]byte
	var ret []byte

	for {
		n, err := in.Read(buf[:])
		if n > 0 {
			switch buf[0] {
			case '\b':
				if len(ret) > 0 {
					ret = ret[:len(ret)-1]
				}
			case '\n':
				if runtime.GOOS != "windows" {
					return ret, nil
				}
				// otherwise ignore \n
			case '\r':
				if runtime.GOOS == "windows" {
					return ret, nil
				}
				// otherwise ignore \r
			default:
				ret = append(ret, buf[0])
			}
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) && len(ret) > 0 {
				return ret, nil
			}
			return ret, err
		}
	}
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-dev"
	}
	return buildVersion(info)
}

// buildVersion prefers the module version recorded by `go install pkg@version`
// and falls back to the VCS revision for local builds.
func buildVersion(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	ver := "unknown"
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			ver = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if dirty {
		ver += "-dev"
	}
	return ver
}

func loadConfig(ctx context.Context) (*config.Config, *slog.Logger, error) {
	cfg, ok := ctx.Value(configKey{}).(*config.Config)
	if !ok {
		return nil, nil, errors.New("config file resolution failed")
	}
	return cfg, slog.Default(), nil
}
