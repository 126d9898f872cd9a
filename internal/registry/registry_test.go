package registry_test

import (
	"context"
	"errors"
	"fmt"
	"path"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ocrflow/internal/artifact"
	"ocrflow/internal/model"
	"ocrflow/internal/registry"
	"ocrflow/pkg/domain"
	"ocrflow/pkg/serrors"
	"ocrflow/pkg/storage"
	mockstorage "ocrflow/pkg/storage/mock"
)

var testName = domain.ModelName{Catalog: "prod", Schema: "billing", Name: "receipts"}

func newTestRegistry(t *testing.T) (*mockstorage.MockStorage, *artifact.Store, registry.Registry) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	store, err := artifact.NewStore(t.TempDir())
	require.NoError(t, err)

	return st, store, registry.New(st, store, registry.Options{})
}

// materializeRunArtifact writes a loadable noop model under a run directory
// and returns the run row pointing at it.
func materializeRunArtifact(t *testing.T, store *artifact.Store, artifactPath string) *domain.Run {
	t.Helper()

	id := domain.RunID(uuid.New())
	run := &domain.Run{
		ID:           id,
		Status:       domain.RunStatusRunning,
		ArtifactRoot: store.RunRoot(id),
	}

	dir, err := store.Resolve(path.Join(run.ArtifactRoot, artifactPath))
	require.NoError(t, err)
	require.NoError(t, model.Save(dir, model.Config{Engine: model.EngineNoop}, model.DefaultSignature()))

	return run
}

func TestRegistry_CreateModel(t *testing.T) {
	st, _, r := newTestRegistry(t)

	st.EXPECT().StoreModel(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m domain.Model) (*domain.Model, error) {
			m.ID = domain.ModelID(uuid.New())

			return &m, nil
		},
	)

	created, err := r.CreateModel(context.Background(), testName, "receipt OCR")
	require.NoError(t, err)
	require.Equal(t, testName, created.Name)
	require.Equal(t, "receipt OCR", created.Description)
	require.NotEqual(t, domain.ModelID(uuid.Nil), created.ID)
}

func TestRegistry_CreateModel_Duplicate(t *testing.T) {
	st, _, r := newTestRegistry(t)

	st.EXPECT().StoreModel(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("insert: %w", storage.ErrDuplicate))

	_, err := r.CreateModel(context.Background(), testName, "")
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestRegistry_CreateModel_InvalidName(t *testing.T) {
	_, _, r := newTestRegistry(t)

	_, err := r.CreateModel(context.Background(), domain.ModelName{Catalog: "Prod"}, "")
	require.ErrorIs(t, err, serrors.ErrInvalid)
}

func TestRegistry_GetModel(t *testing.T) {
	st, _, r := newTestRegistry(t)

	st.EXPECT().ModelByName(gomock.Any(), testName).
		Return(&domain.Model{Name: testName}, nil)
	got, err := r.GetModel(context.Background(), testName)
	require.NoError(t, err)
	require.Equal(t, testName, got.Name)

	st.EXPECT().ModelByName(gomock.Any(), testName).Return(nil, nil)
	_, err = r.GetModel(context.Background(), testName)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRegistry_ListModels(t *testing.T) {
	st, _, r := newTestRegistry(t)

	cursorTime := time.Now().UTC().Truncate(time.Second)
	next := cursorTime.Add(-time.Minute)

	st.EXPECT().Models(gomock.Any(), storage.ModelFilter{
		Catalog: "prod",
		Cursor:  cursorTime,
		Limit:   10,
	}).Return(storage.ModelPage{
		Models:     []domain.Model{{Name: testName}},
		NextCursor: &next,
	}, nil)

	models, nextCursor, err := r.ListModels(context.Background(), registry.ListModelsParams{
		Catalog: "prod",
		Cursor:  cursorTime.Format(time.RFC3339),
		Limit:   10,
	})
	require.NoError(t, err)
	require.Len(t, models, 1)
	require.Equal(t, next.Format(time.RFC3339), nextCursor)
}

func TestRegistry_ListModels_InvalidCursor(t *testing.T) {
	_, _, r := newTestRegistry(t)

	_, _, err := r.ListModels(context.Background(), registry.ListModelsParams{Cursor: "not-a-time"})
	require.ErrorIs(t, err, serrors.ErrInvalid)
}

func TestRegistry_CreateVersion(t *testing.T) {
	st, store, r := newTestRegistry(t)

	run := materializeRunArtifact(t, store, "ocr-model")
	owner := &domain.Model{ID: domain.ModelID(uuid.New()), Name: testName}
	sourceURI := model.RunsURI(run.ID, "ocr-model")

	st.EXPECT().ModelByName(gomock.Any(), testName).Return(owner, nil)
	st.EXPECT().RunByID(gomock.Any(), run.ID).Return(run, nil)
	st.EXPECT().StoreVersion(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, v domain.ModelVersion) (*domain.ModelVersion, error) {
			require.Equal(t, owner.ID, v.ModelID)
			require.Equal(t, sourceURI, v.SourceURI)
			require.Equal(t, run.ID, v.RunID)
			require.Equal(t, domain.VersionStatusPending, v.Status)

			v.ID = uuid.New()
			v.Version = 1

			return &v, nil
		},
	)
	st.EXPECT().UpdateVersionByID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, updates storage.VersionUpdates) (*domain.ModelVersion, error) {
			require.Equal(t, domain.VersionStatusReady, updates.Status)
			require.NotNil(t, updates.ArtifactPath)
			require.Equal(t, store.VersionRoot(owner.ID, 1), *updates.ArtifactPath)

			return &domain.ModelVersion{
				Version:      1,
				Status:       domain.VersionStatusReady,
				ArtifactPath: *updates.ArtifactPath,
			}, nil
		},
	)

	created, err := r.CreateVersion(context.Background(), testName, sourceURI, "first cut")
	require.NoError(t, err)
	require.Equal(t, 1, created.Version)
	require.Equal(t, domain.VersionStatusReady, created.Status)

	// the artifact must be loadable from the registry copy
	dir, err := store.Resolve(created.ArtifactPath)
	require.NoError(t, err)
	_, err = model.Load(dir, model.EngineOptions{})
	require.NoError(t, err)
}

func TestRegistry_CreateVersion_RetriesOnVersionRace(t *testing.T) {
	st, store, r := newTestRegistry(t)

	run := materializeRunArtifact(t, store, "ocr-model")
	owner := &domain.Model{ID: domain.ModelID(uuid.New()), Name: testName}

	st.EXPECT().ModelByName(gomock.Any(), testName).Return(owner, nil)
	st.EXPECT().RunByID(gomock.Any(), run.ID).Return(run, nil)
	first := st.EXPECT().StoreVersion(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("insert: %w", storage.ErrDuplicate))
	st.EXPECT().StoreVersion(gomock.Any(), gomock.Any()).After(first).DoAndReturn(
		func(_ context.Context, v domain.ModelVersion) (*domain.ModelVersion, error) {
			v.ID = uuid.New()
			v.Version = 4

			return &v, nil
		},
	)
	st.EXPECT().UpdateVersionByID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, updates storage.VersionUpdates) (*domain.ModelVersion, error) {
			return &domain.ModelVersion{Version: 4, Status: updates.Status}, nil
		},
	)

	created, err := r.CreateVersion(context.Background(), testName, model.RunsURI(run.ID, "ocr-model"), "")
	require.NoError(t, err)
	require.Equal(t, 4, created.Version)
}

func TestRegistry_CreateVersion_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("model not found", func(t *testing.T) {
		st, _, r := newTestRegistry(t)
		st.EXPECT().ModelByName(gomock.Any(), testName).Return(nil, nil)

		_, err := r.CreateVersion(ctx, testName, "runs:/"+uuid.NewString()+"/m", "")
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("bad source uri", func(t *testing.T) {
		st, _, r := newTestRegistry(t)
		st.EXPECT().ModelByName(gomock.Any(), testName).
			Return(&domain.Model{ID: domain.ModelID(uuid.New()), Name: testName}, nil)

		_, err := r.CreateVersion(ctx, testName, "s3://bucket/key", "")
		require.ErrorIs(t, err, serrors.ErrInvalid)
	})

	t.Run("run not found", func(t *testing.T) {
		st, _, r := newTestRegistry(t)
		runID := domain.RunID(uuid.New())
		st.EXPECT().ModelByName(gomock.Any(), testName).
			Return(&domain.Model{ID: domain.ModelID(uuid.New()), Name: testName}, nil)
		st.EXPECT().RunByID(gomock.Any(), runID).Return(nil, nil)

		_, err := r.CreateVersion(ctx, testName, model.RunsURI(runID, "m"), "")
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("source not loadable", func(t *testing.T) {
		st, store, r := newTestRegistry(t)

		// a run with an artifact dir that holds no model files
		id := domain.RunID(uuid.New())
		run := &domain.Run{ID: id, ArtifactRoot: store.RunRoot(id)}
		_, err := store.MkdirAll(path.Join(run.ArtifactRoot, "empty"))
		require.NoError(t, err)

		st.EXPECT().ModelByName(gomock.Any(), testName).
			Return(&domain.Model{ID: domain.ModelID(uuid.New()), Name: testName}, nil)
		st.EXPECT().RunByID(gomock.Any(), id).Return(run, nil)

		_, err = r.CreateVersion(ctx, testName, model.RunsURI(id, "empty"), "")
		require.ErrorIs(t, err, serrors.ErrInvalid)
	})

	t.Run("version number race exhausts retries", func(t *testing.T) {
		st, store, r := newTestRegistry(t)
		run := materializeRunArtifact(t, store, "m")

		st.EXPECT().ModelByName(gomock.Any(), testName).
			Return(&domain.Model{ID: domain.ModelID(uuid.New()), Name: testName}, nil)
		st.EXPECT().RunByID(gomock.Any(), run.ID).Return(run, nil)
		st.EXPECT().StoreVersion(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("insert: %w", storage.ErrDuplicate)).Times(3)

		_, err := r.CreateVersion(ctx, testName, model.RunsURI(run.ID, "m"), "")
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("copy failure marks the version failed", func(t *testing.T) {
		st, store, r := newTestRegistry(t)
		run := materializeRunArtifact(t, store, "m")
		versionID := uuid.New()

		st.EXPECT().ModelByName(gomock.Any(), testName).
			Return(&domain.Model{ID: domain.ModelID(uuid.New()), Name: testName}, nil)
		st.EXPECT().RunByID(gomock.Any(), run.ID).Return(run, nil)
		st.EXPECT().StoreVersion(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v domain.ModelVersion) (*domain.ModelVersion, error) {
				v.ID = versionID
				v.Version = 1

				// sabotage the source after the load check so the copy fails
				require.NoError(t, store.RemoveAll(path.Join(run.ArtifactRoot, "m")))

				return &v, nil
			},
		)
		st.EXPECT().UpdateVersionByID(gomock.Any(), versionID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, updates storage.VersionUpdates) (*domain.ModelVersion, error) {
				require.Equal(t, domain.VersionStatusFailed, updates.Status)
				require.NotNil(t, updates.LastError)

				return &domain.ModelVersion{Status: domain.VersionStatusFailed}, nil
			},
		)

		_, err := r.CreateVersion(ctx, testName, model.RunsURI(run.ID, "m"), "")
		require.Error(t, err)
		require.NotErrorIs(t, err, serrors.ErrConflict)
	})
}

func TestRegistry_GetVersion(t *testing.T) {
	st, _, r := newTestRegistry(t)
	owner := &domain.Model{ID: domain.ModelID(uuid.New()), Name: testName}

	st.EXPECT().ModelByName(gomock.Any(), testName).Return(owner, nil)
	st.EXPECT().VersionByNumber(gomock.Any(), owner.ID, 2).
		Return(&domain.ModelVersion{Version: 2, Status: domain.VersionStatusReady}, nil)

	got, err := r.GetVersion(context.Background(), testName, 2)
	require.NoError(t, err)
	require.Equal(t, 2, got.Version)

	st.EXPECT().ModelByName(gomock.Any(), testName).Return(owner, nil)
	st.EXPECT().VersionByNumber(gomock.Any(), owner.ID, 99).Return(nil, nil)

	_, err = r.GetVersion(context.Background(), testName, 99)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRegistry_ListVersions(t *testing.T) {
	st, _, r := newTestRegistry(t)
	owner := &domain.Model{ID: domain.ModelID(uuid.New()), Name: testName}

	st.EXPECT().ModelByName(gomock.Any(), testName).Return(owner, nil)
	st.EXPECT().ModelVersions(gomock.Any(), owner.ID).
		Return([]domain.ModelVersion{{Version: 2}, {Version: 1}}, nil)

	versions, err := r.ListVersions(context.Background(), testName)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	require.Equal(t, 2, versions[0].Version)
}

func TestRegistry_ResolveURI(t *testing.T) {
	ctx := context.Background()

	t.Run("runs scheme", func(t *testing.T) {
		st, store, r := newTestRegistry(t)
		run := materializeRunArtifact(t, store, "ocr-model")
		st.EXPECT().RunByID(gomock.Any(), run.ID).Return(run, nil)

		dir, err := r.ResolveURI(ctx, model.RunsURI(run.ID, "ocr-model"))
		require.NoError(t, err)
		_, err = model.LoadConfig(dir)
		require.NoError(t, err)
	})

	t.Run("models scheme", func(t *testing.T) {
		st, store, r := newTestRegistry(t)
		owner := &domain.Model{ID: domain.ModelID(uuid.New()), Name: testName}

		rel := store.VersionRoot(owner.ID, 1)
		abs, err := store.MkdirAll(rel)
		require.NoError(t, err)
		require.NoError(t, model.Save(abs, model.Config{Engine: model.EngineNoop}, model.DefaultSignature()))

		st.EXPECT().ModelByName(gomock.Any(), testName).Return(owner, nil)
		st.EXPECT().VersionByNumber(gomock.Any(), owner.ID, 1).
			Return(&domain.ModelVersion{
				Version:      1,
				Status:       domain.VersionStatusReady,
				ArtifactPath: rel,
			}, nil)

		dir, err := r.ResolveURI(ctx, "models:/"+testName.String()+"/1")
		require.NoError(t, err)
		require.Equal(t, abs, dir)
	})

	t.Run("models scheme rejects non-ready versions", func(t *testing.T) {
		st, _, r := newTestRegistry(t)
		owner := &domain.Model{ID: domain.ModelID(uuid.New()), Name: testName}

		st.EXPECT().ModelByName(gomock.Any(), testName).Return(owner, nil)
		st.EXPECT().VersionByNumber(gomock.Any(), owner.ID, 1).
			Return(&domain.ModelVersion{Version: 1, Status: domain.VersionStatusFailed}, nil)

		_, err := r.ResolveURI(ctx, "models:/"+testName.String()+"/1")
		require.ErrorIs(t, err, serrors.ErrUnavailable)
	})

	t.Run("missing run artifact", func(t *testing.T) {
		st, store, r := newTestRegistry(t)
		id := domain.RunID(uuid.New())
		st.EXPECT().RunByID(gomock.Any(), id).
			Return(&domain.Run{ID: id, ArtifactRoot: store.RunRoot(id)}, nil)

		_, err := r.ResolveURI(ctx, model.RunsURI(id, "nope"))
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestRegistry_ListVersions_PropagatesStorageErrors(t *testing.T) {
	st, _, r := newTestRegistry(t)
	owner := &domain.Model{ID: domain.ModelID(uuid.New()), Name: testName}

	st.EXPECT().ModelByName(gomock.Any(), testName).Return(owner, nil)
	st.EXPECT().ModelVersions(gomock.Any(), owner.ID).Return(nil, errors.New("boom"))

	_, err := r.ListVersions(context.Background(), testName)
	require.Error(t, err)
}
