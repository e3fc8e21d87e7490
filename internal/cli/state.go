package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/artwork"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/config"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/logging"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokeapi"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokedex"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/session"
)

// ErrSignInRequired is returned by commands that show protected content
// to a signed-out session.
var ErrSignInRequired = errors.New("sign in required: pass --user or set auth.user in the config file")

// appState holds what every command needs once flags are parsed.
type appState struct {
	version string

	cfg      *config.Config
	dataset  *pokedex.Dataset
	session  *session.Local
	api      *pokeapi.Client
	images   *artwork.Loader
	resolver artwork.Resolver
}

// load reads the configuration, sets up logging and signs in the user
// named by --user or auth.user.
func (s *appState) load(cmd *cobra.Command) (*logging.LogPathResult, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	result := setupLogging(cmd, cfg.Logging)
	ctx := cmd.Context()

	ds, err := pokedex.Embedded()
	if err != nil {
		return &result, fmt.Errorf("loading dataset: %w", err)
	}
	for _, id := range cfg.Home.Featured {
		if !ds.Has(id) {
			return &result, fmt.Errorf("invalid config %s: home.featured: id %d outside 1..%d", path, id, ds.Size())
		}
	}

	auth := cfg.Auth
	if user, _ := cmd.Flags().GetString("user"); user != "" {
		auth.User = user
	}
	sess, err := session.FromConfig(auth)
	if err != nil {
		logger.Warn().Ctx(ctx).Err(err).Str("user", auth.User).Msg("sign in rejected")
		return &result, fmt.Errorf("signing in %q: %w", auth.User, err)
	}

	s.cfg = cfg
	s.dataset = ds
	s.session = sess
	s.api = pokeapi.NewClient(pokeapi.Config{
		BaseURL:  cfg.API.BaseURL,
		Timeout:  cfg.API.Timeout,
		CacheTTL: cfg.API.CacheTTL,
	})
	s.images = artwork.NewLoader(nil, cfg.Artwork.Width)
	s.resolver = artwork.NewResolver(cfg.Artwork.BaseURL)

	logger.Debug().Ctx(ctx).
		Str("config", path).
		Bool("signed_in", sess.IsAuthenticated()).
		Msg("configuration loaded")
	return &result, nil
}

// requireSession fails with ErrSignInRequired unless a user is signed in.
func (s *appState) requireSession() error {
	if s.session == nil || !s.session.IsAuthenticated() {
		return ErrSignInRequired
	}
	return nil
}

// isPlain reports whether output should be unstyled text.
func isPlain(cmd *cobra.Command) bool {
	plain, _ := cmd.Flags().GetBool("plain")
	return plain
}
