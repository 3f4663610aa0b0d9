// Command csrfcurl sends one HTTP request with the anti-forgery header that a
// Django-style backend expects, taking the token from a cookie.
package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/steipete/sweetcookie"
	"github.com/urfave/cli/v2"

	"github.com/JeanGrijp/go-csrf-client/csrfclient"
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "csrfcurl",
		Usage:     "send an HTTP request carrying the CSRF token from a cookie",
		ArgsUsage: "URL",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "method",
				Aliases: []string{"X"},
				Usage:   "HTTP method",
				Value:   http.MethodGet,
				EnvVars: []string{"CSRFCURL_METHOD"},
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "request body",
				EnvVars: []string{"CSRFCURL_DATA"},
			},
			&cli.StringFlag{
				Name:    "content-type",
				Usage:   "Content-Type of the request body",
				Value:   "application/x-www-form-urlencoded",
				EnvVars: []string{"CSRFCURL_CONTENT_TYPE"},
			},
			&cli.StringFlag{
				Name:    "cookie",
				Aliases: []string{"b"},
				Usage:   `raw cookie string, e.g. "csrftoken=abc; sessionid=xyz"`,
				EnvVars: []string{"CSRFCURL_COOKIE"},
			},
			&cli.StringSliceFlag{
				Name:    "browser",
				Usage:   "read cookies from a local browser profile (chrome, firefox, safari, ...)",
				EnvVars: []string{"CSRFCURL_BROWSER"},
			},
			&cli.StringFlag{
				Name:    "profile",
				Usage:   "browser profile name or cookie store path",
				EnvVars: []string{"CSRFCURL_PROFILE"},
			},
			&cli.StringFlag{
				Name:    "bootstrap",
				Usage:   "URL fetched with GET first so the server can set the token cookie",
				EnvVars: []string{"CSRFCURL_BOOTSTRAP"},
			},
			&cli.StringFlag{
				Name:    "cookie-name",
				Usage:   "name of the token cookie",
				Value:   csrfclient.DefaultCookieName,
				EnvVars: []string{"CSRFCURL_COOKIE_NAME"},
			},
			&cli.StringFlag{
				Name:    "header-name",
				Usage:   "name of the token header",
				Value:   csrfclient.DefaultHeaderName,
				EnvVars: []string{"CSRFCURL_HEADER_NAME"},
			},
			&cli.StringFlag{
				Name:    "origin",
				Usage:   "only send the token to this origin",
				EnvVars: []string{"CSRFCURL_ORIGIN"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Value:   30 * time.Second,
				EnvVars: []string{"CSRFCURL_TIMEOUT"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				EnvVars: []string{"CSRFCURL_VERBOSE"},
			},
		},
		Action: run,
	}
}

// loadEnv reads CSRFCURL_* defaults from a dotenv file. It has to run before
// flags are parsed; a missing file is not an error.
func loadEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func source(c *cli.Context) csrfclient.CookieSource {
	if raw := c.String("cookie"); raw != "" {
		return csrfclient.StaticCookies(raw)
	}
	names := c.StringSlice("browser")
	if len(names) == 0 {
		return nil
	}
	browsers := make([]sweetcookie.Browser, 0, len(names))
	for _, n := range names {
		browsers = append(browsers, sweetcookie.Browser(strings.ToLower(strings.TrimSpace(n))))
	}
	src := csrfclient.BrowserSource{
		Names:    []string{c.String("cookie-name")},
		Browsers: browsers,
	}
	if p := c.String("profile"); p != "" {
		src.Profiles = make(map[sweetcookie.Browser]string, len(browsers))
		for _, b := range browsers {
			src.Profiles[b] = p
		}
	}
	return src
}

func run(c *cli.Context) error {
	target := c.Args().First()
	if target == "" {
		return cli.Exit("a URL is required", 2)
	}

	logger := newLogger(c.App.ErrWriter, c.Bool("verbose"))

	jar, err := cookiejar.New(nil)
	if err != nil {
		return err
	}
	client := &http.Client{Jar: jar, Timeout: c.Duration("timeout")}
	if _, err := csrfclient.InitCSRFInterceptor(client, csrfclient.Config{
		CookieName:    c.String("cookie-name"),
		HeaderName:    c.String("header-name"),
		Source:        source(c),
		TrustedOrigin: c.String("origin"),
		Logger:        &logger,
	}); err != nil {
		return err
	}

	ctx := c.Context
	if boot := c.String("bootstrap"); boot != "" {
		logger.Debug().Str("url", boot).Msg("bootstrapping token cookie")
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, boot, nil)
		if err != nil {
			return err
		}
		res, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("bootstrap request failed: %w", err)
		}
		io.Copy(io.Discard, res.Body)
		res.Body.Close()
	}

	var body io.Reader
	if data := c.String("data"); data != "" {
		body = strings.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(c.String("method")), target, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", c.String("content-type"))
	}

	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	logger.Info().Str("method", req.Method).Str("url", target).Int("status", res.StatusCode).Msg("response")
	if _, err := io.Copy(c.App.Writer, res.Body); err != nil {
		return err
	}
	if res.StatusCode >= http.StatusBadRequest {
		return cli.Exit(fmt.Sprintf("server answered %s", res.Status), 1)
	}
	return nil
}

func main() {
	if err := loadEnv(os.Getenv("CSRFCURL_ENV_FILE")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
