package startup

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
)

// ServerBuilder names a runner and the function that builds it.
type ServerBuilder struct {
	Name       string
	CreateFunc func() (ifrit.Runner, error)
}

func Server(name string, createFunc func() (ifrit.Runner, error)) ServerBuilder {
	return ServerBuilder{
		Name:       name,
		CreateFunc: createFunc,
	}
}

// Runner wraps an already built runner, such as a background worker.
func Runner(name string, runner ifrit.Runner) ServerBuilder {
	return Server(name, func() (ifrit.Runner, error) { return runner, nil })
}

// BuildMembers builds the runners in order, stopping at the first failure.
func BuildMembers(builders []ServerBuilder) (grouper.Members, error) {
	members := make(grouper.Members, 0, len(builders))
	for _, builder := range builders {
		runner, err := builder.CreateFunc()
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", builder.Name, err)
		}
		members = append(members, grouper.Member{Name: builder.Name, Runner: runner})
	}
	return members, nil
}

// StartService builds every member and runs them until a signal arrives.
func StartService(logger lager.Logger, servers ...ServerBuilder) {
	members, err := BuildMembers(servers)
	ExitOnError(err, logger, "failed-to-create-servers")
	err = StartServices(logger, members)
	ExitOnError(err, logger, "service-startup-failed")
}
