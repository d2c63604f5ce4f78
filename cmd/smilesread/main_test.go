package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cx-luo/go-smiles/smilesread"
)

func TestNewRootCommand_Flags(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "smilesread SMILES", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	flag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, flag)
	assert.Equal(t, "info", flag.DefValue)
}

func TestRunRead_PrintsTable(t *testing.T) {
	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"CC"})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Element")
	assert.Contains(t, out.String(), "Begin")
}

func TestRunRead_PropagatesParseError(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"CCX"})

	err := cmd.Execute()
	require.Error(t, err)

	_, parseErr := smilesread.Read("CCX")
	require.Error(t, parseErr)
	assert.Contains(t, err.Error(), parseErr.Error())
}

func TestFormatMolecule_Ethane(t *testing.T) {
	m, err := smilesread.Read("CC")
	require.NoError(t, err)

	table := formatMolecule(m)
	assert.Contains(t, table, "C")
	assert.Contains(t, table, "Single")
}
