package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/lixenwraith/graphwar/audio"
	"github.com/lixenwraith/graphwar/config"
	"github.com/lixenwraith/graphwar/constant"
	"github.com/lixenwraith/graphwar/curve"
	"github.com/lixenwraith/graphwar/game"
)

const (
	logDir      = "logs"
	logFileName = "graphwar.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	seedFlag   = flag.Uint64("seed", 0, "Round seed, 0 uses the current time")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/graphwar.log")
	configFlag = flag.String("config", "", "Path to YAML configuration")
	cueFlag    = flag.String("cue", "", "Directory to write each shot's sound cue as WAV")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Starting session with seed %d", seed)

	session, err := game.NewSession(cfg, seed, log.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if err := run(session, cfg, os.Stdin, os.Stdout, interactive, *cueFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging routes the standard logger to a rotating file in debug mode
// and discards it otherwise. Returns the open file or nil.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("graphwar_%s.log", time.Now().Format("20060102_150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// run reads one equation per line and fires it; blank lines and lines
// starting with '#' are skipped. With cueDir set each shot's cue is written there.
func run(s *game.Session, cfg *config.Config, in io.Reader, out io.Writer, interactive bool, cueDir string) error {
	if cueDir != "" {
		if err := os.MkdirAll(cueDir, 0755); err != nil {
			return fmt.Errorf("cue directory: %w", err)
		}
	}

	describeRound(out, s)

	shots := 0
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, "y = ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		s.SetEquation(line)
		shot, err := s.Fire()
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		shots++
		if cueDir != "" && shot.Cue != nil {
			path := filepath.Join(cueDir, fmt.Sprintf("shot_%03d.wav", shots))
			if err := writeCue(path, shot, cfg); err != nil {
				return err
			}
			log.Printf("Cue %s: %d samples", path, audio.CueLength(shot.Result, cfg.Audio, constant.FrameDuration))
			fmt.Fprintf(out, "cue written to %s\n", path)
		}

		cleared := s.RoundsCleared()
		killed, err := s.Advance(shot.Result.Cut)
		report(out, shot.Result, killed)
		if err != nil {
			return err
		}
		if s.RoundsCleared() > cleared {
			fmt.Fprintf(out, "round cleared (%d total, %d kills)\n", s.RoundsCleared(), s.Kills())
			describeRound(out, s)
		}
	}
	return scanner.Err()
}

func writeCue(path string, shot *game.Shot, cfg *config.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cue: %w", err)
	}
	if err := audio.WriteCue(f, shot.Cue, cfg.Audio); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func describeRound(out io.Writer, s *game.Session) {
	r := s.Round()
	fmt.Fprintf(out, "round %s\n", r.ID)
	fmt.Fprintf(out, "  player at (%.2f, %.2f)\n", r.Player.Center.X, r.Player.Center.Y)
	for _, i := range s.Alive() {
		e := r.Enemies[i]
		fmt.Fprintf(out, "  enemy %d at (%.2f, %.2f)\n", i, e.Center.X, e.Center.Y)
	}
	for i, o := range r.Obstacles {
		fmt.Fprintf(out, "  obstacle %d at (%.2f, %.2f) r=%.2f\n", i, o.Center.X, o.Center.Y, o.Radius)
	}
}

func report(out io.Writer, res curve.Result, killed []int) {
	if len(res.Points) == 0 {
		fmt.Fprintln(out, "no points in range")
		return
	}
	if len(killed) > 0 {
		fmt.Fprintf(out, "hit enemies %v\n", killed)
	}
	if res.Blocked {
		for _, ev := range res.Visible() {
			if ev.Kind == curve.KindObstacle {
				fmt.Fprintf(out, "blocked by obstacle %d at frame %d\n", ev.Index, ev.Frame)
				break
			}
		}
	} else if len(killed) == 0 {
		fmt.Fprintln(out, "miss")
	}
}
