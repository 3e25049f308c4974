// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/near/pagoda-console-sub002/internal/api"
	"github.com/near/pagoda-console-sub002/internal/entities"
)

// ToAPIProject maps entities.Project to transport model.
func ToAPIProject(p entities.Project) api.Project {
	return api.Project{
		ID:        p.ID,
		Name:      p.Name,
		Net:       string(p.Net),
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

// ToAPIProjectList maps a slice of projects to transport slice.
func ToAPIProjectList(list []entities.Project) []api.Project {
	res := make([]api.Project, 0, len(list))
	for _, p := range list {
		res = append(res, ToAPIProject(p))
	}
	return res
}

// ToAPIEnvironment maps entities.Environment to transport model.
func ToAPIEnvironment(e entities.Environment) api.Environment {
	return api.Environment{
		ID:        e.ID,
		ProjectID: e.ProjectID,
		Name:      e.Name,
		Net:       string(e.Net),
		Active:    e.Active,
	}
}

// ToAPIEnvironmentList maps a slice of environments to transport slice.
func ToAPIEnvironmentList(list []entities.Environment) []api.Environment {
	res := make([]api.Environment, 0, len(list))
	for _, e := range list {
		res = append(res, ToAPIEnvironment(e))
	}
	return res
}

// ToAPIContract maps entities.Contract to transport model.
func ToAPIContract(c entities.Contract) api.Contract {
	return api.Contract{
		ID:            c.ID,
		Address:       c.Address,
		Net:           string(c.Net),
		ProjectID:     c.ProjectID,
		EnvironmentID: c.EnvironmentID,
		Active:        c.Active,
		CreatedAt:     c.CreatedAt,
	}
}

// ToAPIContractList maps a slice of contracts to transport slice.
func ToAPIContractList(list []entities.Contract) []api.Contract {
	res := make([]api.Contract, 0, len(list))
	for _, c := range list {
		res = append(res, ToAPIContract(c))
	}
	return res
}

// ToAPIKey maps entities.APIKey to transport model.
func ToAPIKey(k entities.APIKey) api.APIKey {
	return api.APIKey{
		ID:        k.ID,
		ProjectID: k.ProjectID,
		Key:       k.Key,
		Active:    k.Active,
		CreatedAt: k.CreatedAt,
	}
}

// ToAPIKeyList maps a slice of keys to transport slice.
func ToAPIKeyList(list []entities.APIKey) []api.APIKey {
	res := make([]api.APIKey, 0, len(list))
	for _, k := range list {
		res = append(res, ToAPIKey(k))
	}
	return res
}

// ToAPIUser maps entities.User to transport model.
func ToAPIUser(u entities.User) api.User {
	return api.User{ID: u.ID, Active: u.Active}
}

// ToAPITeam maps entities.Team to transport model.
func ToAPITeam(t entities.Team) api.Team {
	return api.Team{ID: t.ID, Name: t.Name, Active: t.Active}
}
