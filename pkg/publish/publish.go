/*
Package publish computes content identifiers for build artifacts and
pushes them to a gateway that serves them to the network.
*/
package publish

import (
	"context"
	"os"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/blessnetwork/blessnet/blsapi"
	"github.com/blessnetwork/blessnet/pkg/config"
	"github.com/blessnetwork/blessnet/pkg/logging"
)

// Publisher stores artifacts under their content identifier.
type Publisher interface {
	// Errors:
	//
	// 	- blessnet-error-publish -- the gateway could not be queried
	Has(ctx context.Context, id cid.Cid) (bool, error)
	// Errors:
	//
	// 	- blessnet-error-io -- the artifact cannot be read
	// 	- blessnet-error-publish -- the gateway rejected the upload
	Publish(ctx context.Context, id cid.Cid, localPath string) error
}

var prefix = cid.Prefix{
	Version:  1,
	Codec:    cid.Raw,
	MhType:   multihash.SHA2_256,
	MhLength: -1,
}

// ComputeCID returns the CIDv1 (raw codec, sha2-256) of the file at path.
//
// Errors:
//
// 	- blessnet-error-io -- the file cannot be read
// 	- blessnet-error-internal -- hashing failed
func ComputeCID(path string) (cid.Cid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cid.Undef, blsapi.ErrorIo("unable to read artifact", path, err)
	}
	id, err := prefix.Sum(data)
	if err != nil {
		return cid.Undef, blsapi.ErrorInternal("unable to hash artifact", err)
	}
	return id, nil
}

// ParseCID validates a content identifier string.
//
// Errors:
//
// 	- blessnet-error-invalid -- s is not a content identifier
func ParseCID(s string) (cid.Cid, error) {
	id, err := cid.Decode(s)
	if err != nil {
		return cid.Undef, blsapi.ErrorInvalid("invalid content identifier: "+err.Error(), [2]string{"cid", s})
	}
	return id, nil
}

// FromConfig returns the publisher configured in state.
//
// Errors:
//
// 	- blessnet-error-invalid -- no gateway is configured
// 	- blessnet-error-publish -- the gateway bucket is not reachable
func FromConfig(ctx context.Context, state config.State) (Publisher, error) {
	cfg := config.Gateway(state)
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, blsapi.ErrorInvalid("no publishing gateway configured; set " +
			config.EnvS3Endpoint + " and " + config.EnvS3Bucket)
	}
	pub, err := NewS3Publisher(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return pub, nil
}

// Push publishes the artifact unless the gateway already holds it.
// It returns the artifact's content identifier either way.
//
// Errors:
//
// 	- blessnet-error-io -- the artifact cannot be read
// 	- blessnet-error-internal -- hashing failed
// 	- blessnet-error-publish -- the gateway could not be queried or rejected the upload
func Push(ctx context.Context, pub Publisher, artifactPath string) (cid.Cid, error) {
	log := logging.Ctx(ctx)
	id, err := ComputeCID(artifactPath)
	if err != nil {
		return cid.Undef, err
	}
	has, err := pub.Has(ctx, id)
	if err != nil {
		return cid.Undef, err
	}
	if has {
		log.Debug("publish", "gateway already holds %s", id)
		return id, nil
	}
	log.Debug("publish", "uploading %s as %s", artifactPath, id)
	if err := pub.Publish(ctx, id, artifactPath); err != nil {
		return cid.Undef, err
	}
	return id, nil
}
