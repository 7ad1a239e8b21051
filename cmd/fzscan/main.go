package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"
	"golang.org/x/text/transform"

	"github.com/Scorpio69t/libfilezilla/charset"
	"github.com/Scorpio69t/libfilezilla/errors"
	"github.com/Scorpio69t/libfilezilla/utf"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Input file (default stdin)")
		from        = flag.String("from", "utf8", "Input encoding: utf8, utf16le, utf16be")
		outFile     = flag.String("out", "", "Output file for converted UTF-8 (default stdout)")
		chunkSize   = flag.Int("chunk", 64*1024, "Read chunk size in bytes")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive byte inspector on validation failure")
	)
	flag.Parse()

	if *interactive && !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	if err := run(*inFile, *from, *outFile, *chunkSize, *interactive, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile, from, outFile string, chunkSize int, interactive bool, logger *zap.Logger) error {
	in := io.Reader(os.Stdin)
	name := "stdin"
	if inFile != "" {
		f, err := os.Open(inFile)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
		name = inFile
	}

	switch from {
	case "utf8":
		return validate(in, name, chunkSize, interactive, logger)
	case "utf16le":
		return convert(in, outFile, charset.UTF16LEDecoder(), logger)
	case "utf16be":
		return convert(in, outFile, charset.UTF16BEDecoder(), logger)
	default:
		return errors.InvalidInput(errors.PhaseValidate,
			fmt.Sprintf("unknown encoding %q (want utf8, utf16le or utf16be)", from))
	}
}

// validate streams the input through the resumable validator, keeping a
// running total so the reported position is cumulative even though each
// chunk's error offset is chunk-relative.
func validate(in io.Reader, name string, chunkSize int, interactive bool, logger *zap.Logger) error {
	var st utf.ValidState
	buf := make([]byte, chunkSize)
	var base int64

	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			if !utf.ValidateChunk(buf[:n], &st) {
				e := st.Err().(*errors.Error)
				pos := base + int64(e.Offset)
				logger.Debug("validation failed",
					zap.Int64("position", pos),
					zap.String("kind", string(e.Kind)))
				if interactive {
					if ierr := runInspector(buf[:n], e, pos); ierr != nil {
						return ierr
					}
				}
				return fmt.Errorf("%s: invalid UTF-8 at byte %d: %w", name, pos, e)
			}
			base += int64(n)
			logger.Debug("chunk valid", zap.Int("bytes", n), zap.Int64("total", base))
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fmt.Errorf("read: %w", rerr)
		}
	}

	if err := st.Finish(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	fmt.Printf("%s: valid UTF-8 (%d bytes)\n", name, base)
	return nil
}

func convert(in io.Reader, outFile string, tr transform.Transformer, logger *zap.Logger) error {
	out := io.Writer(os.Stdout)
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	n, err := io.Copy(out, transform.NewReader(in, tr))
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	logger.Debug("conversion complete", zap.Int64("utf8Bytes", n))
	return nil
}
