package alphabet

import (
	"testing"

	"github.com/arloliu/cesar/errs"
	"github.com/stretchr/testify/require"
)

func TestLatin(t *testing.T) {
	decrypt, encrypt := Latin()

	require.Len(t, decrypt, LatinSize)
	require.Len(t, encrypt, LatinSize)
	require.Equal(t, uint32(65), encrypt['A'])
	require.Equal(t, uint32(90), encrypt['Z'])
	require.Equal(t, 'M', decrypt[77])

	for r, code := range encrypt {
		require.Equal(t, r, decrypt[code])
	}
}

func TestLatin_FreshMapsPerCall(t *testing.T) {
	_, first := Latin()
	_, second := Latin()

	first['A'] = 0
	require.Equal(t, uint32(65), second['A'])
}

func TestNewTable_CopiesInput(t *testing.T) {
	decrypt, encrypt := Latin()
	table := NewTable(encrypt, decrypt)

	encrypt['A'] = 1000
	delete(decrypt, 66)

	code, ok := table.Code('A')
	require.True(t, ok)
	require.Equal(t, uint32(65), code)

	r, ok := table.Symbol(66)
	require.True(t, ok)
	require.Equal(t, 'B', r)

	// accessors hand out copies as well
	m := table.EncryptMap()
	m['A'] = 7
	code, _ = table.Code('A')
	require.Equal(t, uint32(65), code)
}

func TestTable_Lookups(t *testing.T) {
	table := LatinTable()

	require.Equal(t, LatinSize, table.Len())

	_, ok := table.Code('a')
	require.False(t, ok, "lower-case is not part of the Latin table")

	_, ok = table.Symbol(91)
	require.False(t, ok)

	minCode, ok := table.MinCode()
	require.True(t, ok)
	require.Equal(t, uint32(LatinStart), minCode)

	_, ok = NewTable(nil, nil).MinCode()
	require.False(t, ok)
}

func TestFromSymbols(t *testing.T) {
	t.Run("sequential codes", func(t *testing.T) {
		table, err := FromSymbols("XYZ", 10)
		require.NoError(t, err)
		require.Equal(t, []rune{'X', 'Y', 'Z'}, table.Symbols())

		code, _ := table.Code('Z')
		require.Equal(t, uint32(12), code)
		r, _ := table.Symbol(11)
		require.Equal(t, 'Y', r)
	})

	t.Run("matches Latin", func(t *testing.T) {
		table, err := FromSymbols("ABCDEFGHIJKLMNOPQRSTUVWXYZ", LatinStart)
		require.NoError(t, err)
		require.Equal(t, LatinTable().Fingerprint(), table.Fingerprint())
	})

	t.Run("repeated symbol", func(t *testing.T) {
		_, err := FromSymbols("ABA", 0)
		require.ErrorIs(t, err, errs.ErrConfigInvalid)
	})

	t.Run("unicode symbols", func(t *testing.T) {
		table, err := FromSymbols("αβγ", 0)
		require.NoError(t, err)
		require.Equal(t, 3, table.Len())
		code, _ := table.Code('γ')
		require.Equal(t, uint32(2), code)
	})
}

func TestTable_Validate(t *testing.T) {
	require.NoError(t, LatinTable().Validate())

	table := NewTable(map[rune]uint32{'A': 1, 'B': 2, 'C': 1}, nil)
	err := table.Validate()
	require.ErrorIs(t, err, errs.ErrDuplicateCode)
	require.Contains(t, err.Error(), `'A' and 'C'`)
}

func TestValidateEncrypt_ListsEveryCollision(t *testing.T) {
	err := ValidateEncrypt(map[rune]uint32{'A': 1, 'B': 2, 'C': 1, 'D': 2})
	require.ErrorIs(t, err, errs.ErrDuplicateCode)
	require.Contains(t, err.Error(), `'A' and 'C'`)
	require.Contains(t, err.Error(), "shared codes [1 2]")
}

func TestFingerprint(t *testing.T) {
	latin := LatinTable()
	require.Equal(t, latin.Fingerprint(), LatinTable().Fingerprint())

	_, encrypt := Latin()
	encrypt['A'] = 100
	require.NotEqual(t, latin.Fingerprint(), Fingerprint(encrypt))

	_, encrypt = Latin()
	delete(encrypt, 'Z')
	require.NotEqual(t, latin.Fingerprint(), Fingerprint(encrypt))
}
