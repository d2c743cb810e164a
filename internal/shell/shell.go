// Package shell runs the numbered-menu interactive session: load a data
// file, show statistics, display the closest connection, exit.
//
// Input is read as whitespace-separated tokens, so a whole session can be
// piped in on one line: "1 friends.dot 2 3 ann dee 4".
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/socialpath/dotload"
	"github.com/katalvlaran/socialpath/internal/ctxlog"
	"github.com/katalvlaran/socialpath/report"
)

const (
	welcome = "Welcome to the Social Track App. Choose your command:"
	menu    = "1 : Load a data file\n2 : Show statistics\n3 : Display closest connection\n4 : Exit app"
)

// Service is what the shell drives. *app.App implements it.
type Service interface {
	LoadFile(ctx context.Context, path string) (dotload.Result, error)
	Stats() report.Stats
	Closest(from, to string) (report.Connection, error)
}

// Shell is one interactive session.
type Shell struct {
	svc    Service
	in     *bufio.Scanner
	out    io.Writer
	render report.Renderer
}

// New returns a Shell reading from in and writing to out. A nil renderer
// means report.Plain.
func New(svc Service, in io.Reader, out io.Writer, r report.Renderer) *Shell {
	if r == nil {
		r = report.Plain{}
	}
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	return &Shell{svc: svc, in: sc, out: out, render: r}
}

// Run loops until the user picks "4", input ends, or ctx is done.
// End of input is a clean exit; a done context returns ctx.Err().
func (s *Shell) Run(ctx context.Context) error {
	log := ctxlog.FromContext(ctx)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.println(welcome)
		s.println(menu)

		cmd, ok := s.next()
		if !ok {
			log.Debug("Shell input closed.")
			return s.in.Err()
		}
		log.Debug("Shell command.", "command", cmd)

		var err error
		switch cmd {
		case "1":
			err = s.load(ctx)
		case "2":
			err = s.render.Stats(s.out, s.svc.Stats())
		case "3":
			err = s.closest()
		case "4":
			s.println("Exiting app...")
			return nil
		default:
			s.println("Unknown command: " + cmd)
		}
		if errors.Is(err, io.EOF) {
			return s.in.Err()
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) load(ctx context.Context) error {
	s.println("Specify a data file to load:")
	path, ok := s.next()
	if !ok {
		return io.EOF
	}

	if _, err := s.svc.LoadFile(ctx, path); err != nil {
		if errors.Is(err, dotload.ErrSourceUnavailable) {
			s.println("Error: File not found - " + path)
		} else {
			s.println("Error: " + err.Error())
		}
		return nil
	}
	s.println("File loaded.\n")

	return nil
}

func (s *Shell) closest() error {
	s.println("Enter the name of the first person")
	from, ok := s.next()
	if !ok {
		return io.EOF
	}
	s.println("Enter the name of the second person")
	to, ok := s.next()
	if !ok {
		return io.EOF
	}

	c, err := s.svc.Closest(from, to)
	if err != nil {
		s.println("Error: " + err.Error())
		return nil
	}

	return s.render.Connection(s.out, c)
}

func (s *Shell) next() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}

	return s.in.Text(), true
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}
