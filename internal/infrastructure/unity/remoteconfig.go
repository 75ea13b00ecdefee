package unity

import (
	"context"
	"fmt"

	"evergreen-ops/internal/domain/entity"
)

// RemoteConfigSetting is one key/value pair in a Remote Config
// publish.
type RemoteConfigSetting struct {
	Key   string `json:"key"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

type remoteConfigBody struct {
	Type  string                `json:"type"`
	Value []RemoteConfigSetting `json:"value"`
}

func (c *Client) remoteConfigPath() string {
	return fmt.Sprintf("%s/remote-config/v1/projects/%s/environments/%s/configs",
		c.baseURL, c.projectID, c.envID)
}

// PublishRemoteConfig pushes economy metadata (version, generation
// timestamp, active seasonal events) as a Remote Config settings
// block.
func (c *Client) PublishRemoteConfig(ctx context.Context, settings []RemoteConfigSetting) entity.RecordResult {
	if err := c.waitForNextSlot(ctx); err != nil {
		return entity.RecordResult{ID: "settings", Outcome: entity.SyncFailed, Detail: err.Error()}
	}

	rec := record{id: "settings", body: remoteConfigBody{Type: "settings", Value: settings}}

	outcome := c.pushRecord(ctx, c.remoteConfigPath(), rec)
	syncOutcomes.WithLabelValues("remote_config", outcome.Outcome.String()).Inc()

	return outcome
}
