package aws

import (
	"context"
	"errors"
	"testing"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecretValues struct {
	values map[string]*string
	err    error
	calls  int
}

func (f *fakeSecretValues) GetSecretValue(_ context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: f.values[*in.SecretId]}, nil
}

func TestGetSecretMap_DecodesAndCaches(t *testing.T) {
	api := &fakeSecretValues{values: map[string]*string{
		"carshop/DB_CREDENTIALS": sdkaws.String(`{"POSTGRES_USER":"app","POSTGRES_PASSWORD":"pw"}`),
	}}
	client := newSecretsClient(api)

	first, err := client.GetSecretMap(context.Background(), "carshop/DB_CREDENTIALS")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"POSTGRES_USER": "app", "POSTGRES_PASSWORD": "pw"}, first)

	first["POSTGRES_USER"] = "changed"
	second, err := client.GetSecretMap(context.Background(), "carshop/DB_CREDENTIALS")
	require.NoError(t, err)
	assert.Equal(t, "app", second["POSTGRES_USER"])
	assert.Equal(t, 1, api.calls)
}

func TestGetSecretMap_Errors(t *testing.T) {
	tests := []struct {
		name    string
		api     *fakeSecretValues
		wantErr string
	}{
		{
			name:    "api failure",
			api:     &fakeSecretValues{err: errors.New("access denied")},
			wantErr: "failed to get secret db: access denied",
		},
		{
			name:    "binary secret",
			api:     &fakeSecretValues{values: map[string]*string{}},
			wantErr: "secret db has no string value",
		},
		{
			name:    "not an object",
			api:     &fakeSecretValues{values: map[string]*string{"db": sdkaws.String(`"plain"`)}},
			wantErr: "secret db is not a JSON object of strings",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newSecretsClient(tt.api)

			_, err := client.GetSecretMap(context.Background(), "db")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			_, err = client.GetSecretMap(context.Background(), "db")
			require.Error(t, err)
			assert.Equal(t, 2, tt.api.calls)
		})
	}
}
