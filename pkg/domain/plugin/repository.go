package plugin

import "context"

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=plugin_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	FindByCode(ctx context.Context, code string) (*Plugin, error)
	List(ctx context.Context) ([]Plugin, error)
	Save(ctx context.Context, plugin *Plugin) error
	Update(ctx context.Context, plugin *Plugin) error
	// Transaction runs fn against a repository bound to a single database
	// transaction. A returned error rolls the transaction back.
	Transaction(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error
}
