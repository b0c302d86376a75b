package envstore

import (
	"github.com/arthur-debert/pathtidy/pkg/errors"
	"github.com/arthur-debert/pathtidy/pkg/logging"
	"github.com/arthur-debert/pathtidy/pkg/reconcile"
)

// Apply persists both scopes, system first then user, with no transaction.
// A failure on the first write leaves the store untouched; a failure on the
// second write after the first succeeded is reported with the distinct
// ENV_WRITE_PARTIAL code so the caller can tell the user exactly which half
// landed. Recovery from that state is manual, via the backup snapshots
// taken before the apply.
func Apply(store Store, system, user string) error {
	log := logging.GetLogger("envstore")

	if err := store.Save(reconcile.ScopeSystem, system); err != nil {
		return errors.Wrap(err, errors.ErrEnvWrite, "failed to write system scope").
			WithDetail("scope", string(reconcile.ScopeSystem))
	}
	log.Info().Str("scope", string(reconcile.ScopeSystem)).Msg("Scope persisted")

	if err := store.Save(reconcile.ScopeUser, user); err != nil {
		return errors.Wrap(err, errors.ErrEnvWritePartial,
			"user scope write failed after the system scope was already written").
			WithDetail("scope", string(reconcile.ScopeUser))
	}
	log.Info().Str("scope", string(reconcile.ScopeUser)).Msg("Scope persisted")
	return nil
}
