package status

import (
	"context"
	"os"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	log "github.com/sirupsen/logrus"

	"statusagent/models"
)

// Containers lists all containers on the host, running or not. Hosts
// without a Docker socket return nil without error.
func Containers(ctx context.Context) []models.ContainerInfo {
	if _, err := os.Stat("/var/run/docker.sock"); err != nil {
		return nil
	}

	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		log.Warnf("Docker client error: %v", err)
		return nil
	}
	defer cli.Close()

	containerList, err := cli.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		log.Warnf("Docker list error: %v", err)
		return nil
	}

	containers := make([]models.ContainerInfo, 0, len(containerList))
	for _, c := range containerList {
		name := ""
		if len(c.Names) > 0 {
			name = strings.TrimPrefix(c.Names[0], "/")
		}
		containers = append(containers, models.ContainerInfo{
			ID:      c.ID[:12],
			Name:    name,
			Image:   c.Image,
			Status:  c.Status,
			State:   c.State,
			Created: c.Created,
		})
	}
	return containers
}
