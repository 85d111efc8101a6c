package testutil

import (
	"embed"
	"time"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/system"
)

//go:embed fixtures
var fixturesFS embed.FS

// FixtureNow is the instant the engine fixtures were captured against.
var FixtureNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// DockerListPattern is the MockExecutor pattern for `docker ps`.
const DockerListPattern = "docker ps -a --format {{json .}}"

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// FixtureContainerIDs lists the containers in docker_ps.jsonl that have
// an inspect fixture. ffffeeee0000 is listed but has none.
var FixtureContainerIDs = []string{"3f2a9c1d0b7e", "8c41e7aa12f0", "d09b2c7e6a55"}

// LoadDockerFixtures registers the captured `docker ps` and `docker
// inspect` output on m and puts docker on its PATH. Inspecting a
// container without a fixture fails the way docker does.
func LoadDockerFixtures(m *system.MockExecutor) error {
	list, err := LoadFixture("docker_ps.jsonl")
	if err != nil {
		return err
	}
	m.AddPath("docker")
	m.AddResponse(DockerListPattern, string(list))

	for _, id := range FixtureContainerIDs {
		data, err := LoadFixture("inspect_" + id + ".json")
		if err != nil {
			return err
		}
		m.AddResponse("docker inspect "+id, string(data))
	}

	m.AddFailure("docker inspect", 1, "Error: No such object")
	return nil
}
