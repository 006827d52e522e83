// Command inquiry fills in the inquiry form from flags and submits it to a relay server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/janisto/inquiry-relay/internal/form"
	applog "github.com/janisto/inquiry-relay/internal/platform/logging"
)

// textFields are the form fields settable by flag, in display order.
var textFields = []string{
	"name",
	"email",
	"phone",
	"phonePermission",
	"usageType",
	"invoiceRegistration",
	"provideRegistrationNumber",
	"city",
	"product_info",
	"inquiry_source",
	"product_details",
	"product_condition",
	"additional_notes",
	"fileName",
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("inquiry", flag.ContinueOnError)
	fs.SetOutput(stderr)
	server := fs.String("server", "http://localhost:8080", "relay server base URL")
	image := fs.String("image", "", "path to an image to attach")
	timeout := fs.Duration("timeout", 90*time.Second, "request timeout")
	debug := fs.Bool("debug", false, "enable debug logging")
	values := make(map[string]*string, len(textFields))
	for _, name := range textFields {
		values[name] = fs.String(name, "", "form field "+name)
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	applog.Configure("inquiry-cli", *debug)
	defer func() { _ = applog.Sync() }()

	mgr := form.NewManager(
		form.NewHTTPSubmitter(
			form.WithBaseURL(*server),
			form.WithHTTPClient(&http.Client{Timeout: *timeout}),
		),
		form.NewLogNotifier(applog.Logger()),
	)
	for _, name := range textFields {
		if err := mgr.UpdateField(name, *values[name]); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}
	if *image != "" {
		uri, err := readImage(*image)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		mgr.UpdateImage(&uri)
		if *values["fileName"] == "" {
			_ = mgr.UpdateField("fileName", strings.TrimSuffix(filepath.Base(*image), filepath.Ext(*image)))
		}
	}

	if err := form.Validate(mgr.State()); err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			for field, issue := range verr.Fields {
				applog.LogWarn(ctx, "invalid field", zap.String("field", field), zap.String("issue", issue))
			}
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	if result := mgr.Submit(ctx); result != form.ResultSucceeded {
		return 1
	}
	return 0
}

// readImage loads path and encodes it as a data URI with a sniffed content type.
func readImage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("read image: %s is empty", path)
	}
	return form.DataURI(http.DetectContentType(data), data), nil
}
