package cmd

import (
	"context"

	"planter/advisor"
	"planter/communication"
	"planter/communication/client"
	"planter/engine"
	"planter/game"
)

// backend is what the play loop drives: a local session or a remote server.
type backend interface {
	recommend() ([]advisor.Candidate, error)
	apply(p game.Player, cmd communication.MoveCommand) (bool, error)
	affirm(cmd communication.MoveCommand) (int, error)
	reset(holder game.Player) error
	round(faceUp []game.Resource) error
	state() (game.State, error)
	preferences() ([]advisor.PreferenceEntry, error)
	catalog() *game.Catalog
}

type localBackend struct {
	session *engine.Session
}

func (b localBackend) recommend() ([]advisor.Candidate, error) {
	return b.session.Recommend(), nil
}

func (b localBackend) apply(p game.Player, cmd communication.MoveCommand) (bool, error) {
	role, resource, building, err := cmd.Parse(b.session.Catalog())
	if err != nil {
		return false, err
	}
	if p == game.Opponent {
		_, ok := b.session.ApplyOpponentRole(role, resource, building)
		return ok, nil
	}
	_, ok := b.session.ApplyChosenMove(role, resource, building)
	return ok, nil
}

func (b localBackend) affirm(cmd communication.MoveCommand) (int, error) {
	role, resource, building, err := cmd.Parse(b.session.Catalog())
	if err != nil {
		return 0, err
	}
	return b.session.RecordAffirmedPreference(role, resource, building), nil
}

func (b localBackend) reset(holder game.Player) error {
	b.session.ResetSession(holder)
	return nil
}

func (b localBackend) round(faceUp []game.Resource) error {
	b.session.StartRound(faceUp)
	return nil
}

func (b localBackend) state() (game.State, error) {
	return b.session.State(), nil
}

func (b localBackend) preferences() ([]advisor.PreferenceEntry, error) {
	return b.session.Preferences(), nil
}

func (b localBackend) catalog() *game.Catalog {
	return b.session.Catalog()
}

// remoteBackend drives the shared session of a running server.
type remoteBackend struct {
	ctx    context.Context
	client *client.Client
	cat    *game.Catalog
}

func (b remoteBackend) recommend() ([]advisor.Candidate, error) {
	view, err := b.client.Session(b.ctx)
	if err != nil {
		return nil, err
	}
	candidates := make([]advisor.Candidate, 0, len(view.Recommendations))
	for _, cj := range view.Recommendations {
		candidates = append(candidates, cj.Candidate(b.cat))
	}
	return candidates, nil
}

func (b remoteBackend) apply(p game.Player, cmd communication.MoveCommand) (bool, error) {
	apply := b.client.Apply
	if p == game.Opponent {
		apply = b.client.Opponent
	}
	res, err := apply(b.ctx, cmd)
	return res.Applied, err
}

func (b remoteBackend) affirm(cmd communication.MoveCommand) (int, error) {
	return b.client.Affirm(b.ctx, cmd)
}

func (b remoteBackend) reset(holder game.Player) error {
	_, err := b.client.Reset(b.ctx, holder.String())
	return err
}

func (b remoteBackend) round(faceUp []game.Resource) error {
	names := make([]string, 0, len(faceUp))
	for _, r := range faceUp {
		names = append(names, r.String())
	}
	_, err := b.client.StartRound(b.ctx, names)
	return err
}

func (b remoteBackend) state() (game.State, error) {
	view, err := b.client.Session(b.ctx)
	if err != nil {
		return game.State{}, err
	}
	return view.State.ToState(b.cat)
}

func (b remoteBackend) preferences() ([]advisor.PreferenceEntry, error) {
	view, err := b.client.Session(b.ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]advisor.PreferenceEntry, 0, len(view.Preferences))
	for _, pj := range view.Preferences {
		entries = append(entries, pj.Entry())
	}
	return entries, nil
}

func (b remoteBackend) catalog() *game.Catalog {
	return b.cat
}
