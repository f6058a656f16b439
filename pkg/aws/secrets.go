package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"sync"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type secretValueAPI interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsClient reads credential bundles stored in Secrets Manager as flat
// JSON objects. Decoded bundles are kept for the life of the process.
type SecretsClient struct {
	api     secretValueAPI
	mu      sync.Mutex
	bundles map[string]map[string]string
}

func NewSecretsClient(cfg sdkaws.Config) *SecretsClient {
	return newSecretsClient(secretsmanager.NewFromConfig(cfg))
}

func newSecretsClient(api secretValueAPI) *SecretsClient {
	return &SecretsClient{api: api, bundles: make(map[string]map[string]string)}
}

// GetSecretMap returns the key/value pairs of secret name. Callers get their
// own copy.
func (s *SecretsClient) GetSecretMap(ctx context.Context, name string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bundle, ok := s.bundles[name]; ok {
		return maps.Clone(bundle), nil
	}

	out, err := s.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{SecretId: sdkaws.String(name)})
	if err != nil {
		return nil, fmt.Errorf("failed to get secret %s: %w", name, err)
	}
	if out.SecretString == nil {
		return nil, fmt.Errorf("secret %s has no string value", name)
	}
	bundle := make(map[string]string)
	if err := json.Unmarshal([]byte(*out.SecretString), &bundle); err != nil {
		return nil, fmt.Errorf("secret %s is not a JSON object of strings: %w", name, err)
	}

	s.bundles[name] = bundle
	return maps.Clone(bundle), nil
}
