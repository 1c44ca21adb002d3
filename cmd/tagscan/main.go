// Command tagscan dumps ID3v2 metadata from a file or HTTP(S) URL, and
// estimates MP3 playing time from the same input.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tagscan/tagscan"
)

var errInvalidInput = fmt.Errorf("argument must be a file path or an http(s) URL")

// openFile and openHTTP mirror the dual file/HTTP input handling of this
// module's MP3-duration heritage: either source reports a total length
// up front, which EstimateDuration needs to turn a bit rate into a
// playing time. A local file is memory-mapped rather than streamed, so
// scanning a large file never buffers it all into a read.
func openFile(location *url.URL) (io.ReadCloser, int64, error) {
	f, err := tagscan.OpenMmap(location.Path)
	if err != nil {
		return nil, 0, err
	}

	return f, int64(f.Len()), nil
}

func openHTTP(location *url.URL) (io.ReadCloser, int64, error) {
	req, err := http.NewRequest("GET", location.String(), nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, 0, err
	}

	length := resp.ContentLength
	if cr := resp.Header.Get("Content-Range"); cr != "" {
		if parts := strings.SplitN(cr, "/", 2); len(parts) == 2 {
			if total, err := strconv.Atoi(parts[1]); err == nil {
				length = int64(total)
			}
		}
	}

	return resp.Body, length, nil
}

func openInput(arg string) (io.ReadCloser, int64, error) {
	loc, err := url.Parse(arg)
	if err != nil || loc.Path == "" && loc.Opaque == "" {
		return nil, 0, errInvalidInput
	}

	switch loc.Scheme {
	case "http", "https":
		return openHTTP(loc)
	case "", "file":
		return openFile(loc)
	default:
		return nil, 0, errInvalidInput
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tagscan",
		Short: "Parse ID3v2 tags and estimate MP3 playing time",
	}
	root.AddCommand(newDumpCmd(), newProbeCmd())
	return root
}

func newDumpCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dump <path-or-url>",
		Short: "Print every parsed tag and field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer r.Close()

			containers, err := tagscan.Scan(r)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(containers)
			}

			for _, c := range containers {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes, %d fields)\n", c.Format, c.Length, len(c.Fields))
				for _, f := range c.Fields {
					printField(cmd.OutOrStdout(), f)
				}
				for _, w := range c.Warnings {
					fmt.Fprintf(cmd.OutOrStdout(), "  warning: %s\n", w)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON instead of text")
	return cmd
}

func printField(w io.Writer, f tagscan.Field) {
	if f.Unknown {
		fmt.Fprintf(w, "  [%s] (unknown, %d bytes)\n", string(f.SystemName[:]), len(f.Data))
		return
	}

	name := f.Name
	if name == "" {
		name = string(f.SystemName[:])
	}

	var rendered []string
	for _, v := range f.Values {
		rendered = append(rendered, renderValue(v))
	}

	if f.Subtitle != "" {
		fmt.Fprintf(w, "  %s (%s): %s\n", name, f.Subtitle, strings.Join(rendered, "; "))
	} else {
		fmt.Fprintf(w, "  %s: %s\n", name, strings.Join(rendered, "; "))
	}
}

func renderValue(v tagscan.Value) string {
	switch v.Kind {
	case tagscan.KindText:
		return v.Text
	case tagscan.KindInteger:
		return fmt.Sprintf("%d", v.Integer)
	case tagscan.KindDuration:
		return v.Duration.String()
	case tagscan.KindTimestamp:
		if v.Timestamp.End != nil {
			return fmt.Sprintf("%s .. %s", v.Timestamp.Time, *v.Timestamp.End)
		}
		return v.Timestamp.Time.String()
	case tagscan.KindImage:
		return fmt.Sprintf("<image %s, %d bytes>", v.Image.MIME, len(v.Image.Data))
	default:
		return fmt.Sprintf("% x", v.Bytes)
	}
}

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe <path-or-url>",
		Short: "Estimate MP3 playing time from the leading tag and first audio frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, totalLength, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer r.Close()

			est, err := tagscan.EstimateDuration(r, totalLength)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), est.Duration)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
