package host

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPlugin appends its name to a shared log on setup and close.
type recordingPlugin struct {
	name string
	log  *[]string
	err  error
}

func (p *recordingPlugin) Name() string { return p.name }

func (p *recordingPlugin) Setup(_ context.Context, app *App) error {
	*p.log = append(*p.log, "setup "+p.name)
	if p.err != nil {
		return p.err
	}
	app.OnClose(func() error {
		*p.log = append(*p.log, "close "+p.name)
		return nil
	})
	return nil
}

func TestBuilder_SetupOrder(t *testing.T) {
	var log []string

	app, err := NewBuilder("test", "com.example.test").
		WithPathResolver(StaticDir(t.TempDir())).
		Plugin(&recordingPlugin{name: "a", log: &log}).
		Plugin(&recordingPlugin{name: "b", log: &log}).
		Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"setup a", "setup b"}, log)

	require.NoError(t, app.Close())
	assert.Equal(t, []string{"setup a", "setup b", "close b", "close a"}, log)

	// Second close is a no-op.
	require.NoError(t, app.Close())
	assert.Len(t, log, 4)
}

func TestBuilder_SetupFailureAborts(t *testing.T) {
	var log []string
	boom := errors.New("boom")

	app, err := NewBuilder("test", "com.example.test").
		WithPathResolver(StaticDir(t.TempDir())).
		Plugin(&recordingPlugin{name: "a", log: &log}).
		Plugin(&recordingPlugin{name: "b", log: &log, err: boom}).
		Plugin(&recordingPlugin{name: "c", log: &log}).
		Build(context.Background())

	require.Error(t, err)
	assert.Nil(t, app)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "plugin b: boom", err.Error())

	// c never ran, a was torn down.
	assert.Equal(t, []string{"setup a", "setup b", "close a"}, log)
}

func TestBuilder_DuplicatePluginName(t *testing.T) {
	var log []string

	_, err := NewBuilder("test", "com.example.test").
		Plugin(&recordingPlugin{name: "a", log: &log}).
		Plugin(&recordingPlugin{name: "a", log: &log}).
		Build(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "registered more than once")
	assert.Empty(t, log, "no setup runs when registration is invalid")
}

func TestBuilder_NilPlugin(t *testing.T) {
	_, err := NewBuilder("test", "com.example.test").
		Plugin(nil).
		Build(context.Background())
	assert.Error(t, err)
}

func TestBuilder_DefaultPathResolver(t *testing.T) {
	app, err := NewBuilder("notes", "com.example.notes").Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "notes", app.Name())
	assert.Equal(t, "com.example.notes", app.Identifier())
	assert.Equal(t, DataDirResolver{Identifier: "com.example.notes"}, app.PathResolver())
}

func TestApp_CloseJoinsErrors(t *testing.T) {
	app := newTestApp(t)

	errA := errors.New("a")
	errB := errors.New("b")
	app.OnClose(func() error { return errA })
	app.OnClose(func() error { return nil })
	app.OnClose(func() error { return errB })

	err := app.Close()
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestApp_AppDataDir(t *testing.T) {
	dir := t.TempDir()
	app, err := NewBuilder("test", "com.example.test").
		WithPathResolver(StaticDir(dir)).
		Build(context.Background())
	require.NoError(t, err)

	got, err := app.AppDataDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}
