package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/typeget/internal/adapters/logger"
	"go.trai.ch/typeget/internal/app"
	"go.trai.ch/typeget/internal/core/domain"
	"go.trai.ch/typeget/internal/core/ports"
	"go.trai.ch/typeget/internal/core/ports/mocks"
	"go.trai.ch/typeget/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	settings  *mocks.MockSettingsLoader
	manifests *mocks.MockManifestLoader
	installer *mocks.MockInstaller
	logger    *mocks.MockLogger
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		settings:  mocks.NewMockSettingsLoader(ctrl),
		manifests: mocks.NewMockManifestLoader(ctrl),
		installer: mocks.NewMockInstaller(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.app = newApp(f.settings, f.manifests, f.installer, f.logger)
	return f
}

func newApp(settings ports.SettingsLoader, manifests ports.ManifestLoader, installer ports.Installer, log ports.Logger) *app.App {
	sched := scheduler.NewScheduler(installer, log)
	return app.New(settings, manifests, sched, log)
}

func TestApp_Run_InstallsTypePackages(t *testing.T) {
	f := newFixture(t)

	f.settings.EXPECT().Load(".").Return(domain.DefaultSettings(), nil)
	f.manifests.EXPECT().Load(".").Return(&domain.Manifest{
		Dependencies:    map[string]string{"lodash": "^4.17.21"},
		DevDependencies: map[string]string{"@types/node": "^20.0.0"},
	}, nil)
	f.logger.EXPECT().Info("installing 1 type packages with npm")
	f.installer.EXPECT().Install(gomock.Any(), domain.InstallJob{Manager: "npm", Package: "@types/lodash"}).Return(nil)

	err := f.app.Run(context.Background(), app.RunOptions{})
	require.NoError(t, err)
}

func TestApp_Run_OneInstallPerPackage(t *testing.T) {
	f := newFixture(t)

	f.settings.EXPECT().Load("web").Return(domain.DefaultSettings(), nil)
	f.manifests.EXPECT().Load("web").Return(&domain.Manifest{
		Dependencies:    map[string]string{"react": "18", "react-dom": "18", "express": "4"},
		DevDependencies: map[string]string{"jest": "29", "@types/jest": "29"},
	}, nil)
	f.logger.EXPECT().Info(gomock.Any())
	f.installer.EXPECT().Install(gomock.Any(), gomock.Any()).Return(nil).Times(4)

	err := f.app.Run(context.Background(), app.RunOptions{Dir: "web", Jobs: 3})
	require.NoError(t, err)
}

func TestApp_Run_NoDependencies(t *testing.T) {
	tests := []struct {
		name     string
		manifest *domain.Manifest
	}{
		{name: "absent groups", manifest: &domain.Manifest{}},
		{name: "empty groups", manifest: &domain.Manifest{
			Dependencies:    map[string]string{},
			DevDependencies: map[string]string{},
		}},
		{name: "only type packages", manifest: &domain.Manifest{
			Dependencies: map[string]string{"@types/a": "1", "@types/b": "1"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.settings.EXPECT().Load(".").Return(domain.DefaultSettings(), nil)
			f.manifests.EXPECT().Load(".").Return(tt.manifest, nil)
			f.logger.EXPECT().Info("No dependencies specified")

			require.NoError(t, f.app.Run(context.Background(), app.RunOptions{}))
		})
	}
}

func TestApp_Run_ManifestErrors(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{name: "missing manifest", sentinel: domain.ErrManifestNotFound},
		{name: "invalid manifest", sentinel: domain.ErrManifestParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.settings.EXPECT().Load(".").Return(domain.DefaultSettings(), nil)
			f.manifests.EXPECT().Load(".").Return(nil, errors.Join(tt.sentinel, errors.New("cause")))

			err := f.app.Run(context.Background(), app.RunOptions{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestApp_Run_SettingsError(t *testing.T) {
	f := newFixture(t)
	f.settings.EXPECT().Load(".").Return(domain.Settings{}, errors.Join(domain.ErrSettingsParseFailed, errors.New("bad yaml")))

	err := f.app.Run(context.Background(), app.RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSettingsParseFailed)
}

func TestApp_Plan_MergesOptionsOverSettings(t *testing.T) {
	f := newFixture(t)

	f.settings.EXPECT().Load(".").Return(domain.Settings{
		PackageManager: "pnpm",
		Parallelism:    2,
		Timeout:        time.Minute,
		Skip:           []string{"react-scripts"},
	}, nil)
	f.manifests.EXPECT().Load(".").Return(&domain.Manifest{
		Dependencies: map[string]string{"react": "18", "react-scripts": "5"},
	}, nil)

	plan, err := f.app.Plan(app.RunOptions{PackageManager: "yarn", Jobs: 8})
	require.NoError(t, err)

	assert.Equal(t, []domain.InstallJob{{Manager: "yarn", Package: "@types/react"}}, plan.Jobs)
	assert.Equal(t, scheduler.Options{Parallelism: 8, Timeout: time.Minute}, plan.Options)
}

func TestApp_Plan_KeepsSettingsWithoutOptions(t *testing.T) {
	f := newFixture(t)

	f.settings.EXPECT().Load(".").Return(domain.Settings{PackageManager: "pnpm", Parallelism: 2}, nil)
	f.manifests.EXPECT().Load(".").Return(&domain.Manifest{
		Dependencies: map[string]string{"lodash": "4"},
	}, nil)

	plan, err := f.app.Plan(app.RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"@types/lodash"}, plan.Packages())
	assert.Equal(t, "pnpm", plan.Jobs[0].Manager)
	assert.Equal(t, 2, plan.Options.Parallelism)
}

func TestApp_Run_DryRun(t *testing.T) {
	f := newFixture(t)
	out := new(bytes.Buffer)
	f.app.WithOutput(out)

	f.settings.EXPECT().Load(".").Return(domain.DefaultSettings(), nil)
	f.manifests.EXPECT().Load(".").Return(&domain.Manifest{
		Dependencies:    map[string]string{"lodash": "4", "express": "4"},
		DevDependencies: map[string]string{"jest": "29"},
	}, nil)

	err := f.app.Run(context.Background(), app.RunOptions{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, "@types/express\n@types/lodash\n@types/jest\n", out.String())
}

func TestApp_Run_Interrupted(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.settings.EXPECT().Load(".").Return(domain.DefaultSettings(), nil)
	f.manifests.EXPECT().Load(".").Return(&domain.Manifest{
		Dependencies: map[string]string{"lodash": "4"},
	}, nil)
	f.logger.EXPECT().Info(gomock.Any())

	err := f.app.Run(ctx, app.RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInstallInterrupted)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApp_Run_LogJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mocks.NewMockSettingsLoader(ctrl)
	manifests := mocks.NewMockManifestLoader(ctrl)
	installer := mocks.NewMockInstaller(ctrl)

	buf := new(bytes.Buffer)
	log := logger.NewWithOutput(buf)
	a := newApp(settings, manifests, installer, log)

	settings.EXPECT().Load(".").Return(domain.DefaultSettings(), nil)
	manifests.EXPECT().Load(".").Return(&domain.Manifest{}, nil)

	require.NoError(t, a.Run(context.Background(), app.RunOptions{LogJSON: true}))
	assert.Contains(t, buf.String(), `"msg":"No dependencies specified"`)
	assert.Contains(t, buf.String(), `"level":"INFO"`)
}
