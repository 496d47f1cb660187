package attrstore_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/probe/internal/adapters/attrstore"
	"go.trai.ch/probe/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

func TestStore_PutAndLookup(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "attributes.mp")

	store, err := attrstore.NewStore(storePath)
	require.NoError(t, err)

	foo := domain.NewProcName(domain.LanguageClang, "foo")
	err = store.Put(domain.ProcedureAttributes{
		Name:      foo,
		Source:    domain.NewSourceFile("src/file1.c"),
		IsDefined: true,
		Line:      12,
	})
	require.NoError(t, err)

	got, err := store.Lookup(foo)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, foo, got.Name)
	assert.Equal(t, domain.NewSourceFile("src/file1.c"), got.Source)
	assert.True(t, got.IsDefined)
	assert.Equal(t, 12, got.Line)
}

func TestStore_LookupUnknown(t *testing.T) {
	store, err := attrstore.NewStore(filepath.Join(t.TempDir(), "attributes.mp"))
	require.NoError(t, err)

	got, err := store.Lookup(domain.NewProcName(domain.LanguageClang, "bar"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_LanguageIsPartOfTheKey(t *testing.T) {
	store, err := attrstore.NewStore(filepath.Join(t.TempDir(), "attributes.mp"))
	require.NoError(t, err)

	require.NoError(t, store.Put(domain.ProcedureAttributes{
		Name:   domain.NewProcName(domain.LanguageJava, "run"),
		Source: domain.NewSourceFile("Main.java"),
	}))

	got, err := store.Lookup(domain.NewProcName(domain.LanguageClang, "run"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Persistence(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "nested", "attributes.mp")

	// 1. Create store and save data
	store1, err := attrstore.NewStore(storePath)
	require.NoError(t, err)
	baz := domain.NewProcName(domain.LanguageClang, "baz")
	require.NoError(t, store1.Put(domain.ProcedureAttributes{Name: baz, Source: domain.NewSourceFile("file2.c")}))

	// 2. Create new store instance pointing to same file
	store2, err := attrstore.NewStore(storePath)
	require.NoError(t, err)

	got, err := store2.Lookup(baz)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "file2.c", got.Source.Path())
}

func TestStore_RefreshSeesOtherWriters(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "attributes.mp")

	reader, err := attrstore.NewStore(storePath)
	require.NoError(t, err)
	writer, err := attrstore.NewStore(storePath)
	require.NoError(t, err)

	qux := domain.NewProcName(domain.LanguageClang, "qux")
	require.NoError(t, writer.Put(domain.ProcedureAttributes{Name: qux, Source: domain.NewSourceFile("q.c")}))

	got, err := reader.Lookup(qux)
	require.NoError(t, err)
	assert.Nil(t, got, "reader must not see the record before Refresh")

	require.NoError(t, reader.Refresh())
	got, err = reader.Lookup(qux)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, reader.Len())
}

func TestNewStore_CorruptFile(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "attributes.mp")
	require.NoError(t, os.WriteFile(storePath, []byte{0xc1}, 0o600))

	_, err := attrstore.NewStore(storePath)
	require.Error(t, err)
}

func TestStore_ConcurrentPutsAllPersist(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "attributes.mp")
	store, err := attrstore.NewStore(storePath)
	require.NoError(t, err)

	const n = 32
	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			return store.Put(domain.ProcedureAttributes{
				Name:   domain.NewProcName(domain.LanguageClang, fmt.Sprintf("proc%d", i)),
				Source: domain.NewSourceFile(fmt.Sprintf("src/f%d.c", i)),
			})
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, n, store.Len())

	reopened, err := attrstore.NewStore(storePath)
	require.NoError(t, err)
	assert.Equal(t, n, reopened.Len())
}

func TestStore_EmptySourceIsZero(t *testing.T) {
	store, err := attrstore.NewStore(filepath.Join(t.TempDir(), "attributes.mp"))
	require.NoError(t, err)
	foo := domain.NewProcName(domain.LanguageClang, "foo")
	require.NoError(t, store.Put(domain.ProcedureAttributes{Name: foo}))

	got, err := store.Lookup(foo)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Source.IsZero())
}
