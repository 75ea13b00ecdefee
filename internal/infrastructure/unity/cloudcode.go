package unity

import (
	"context"
	"fmt"

	"evergreen-ops/internal/domain/entity"
)

type cloudCodeScript struct {
	Name     string `json:"name"`
	Language string `json:"language"`
	Code     string `json:"code"`
}

func (c *Client) cloudCodePath() string {
	return fmt.Sprintf("%s/cloud-code/v1/projects/%s/scripts", c.baseURL, c.projectID)
}

// DeployCloudCodeScript pushes one JS script to Cloud Code. Same
// outcome taxonomy as economy pushes: 409 means the script already
// exists under that name.
func (c *Client) DeployCloudCodeScript(ctx context.Context, name, code string) entity.RecordResult {
	if err := c.waitForNextSlot(ctx); err != nil {
		return entity.RecordResult{ID: name, Outcome: entity.SyncFailed, Detail: err.Error()}
	}

	rec := record{id: name, body: cloudCodeScript{Name: name, Language: "JS", Code: code}}

	outcome := c.pushRecord(ctx, c.cloudCodePath(), rec)
	syncOutcomes.WithLabelValues("cloud_code", outcome.Outcome.String()).Inc()

	return outcome
}
