package blob

import (
	"fortio.org/safecast"
	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/zerr"
)

type fieldDTO struct {
	Name string `msgpack:"name"`
	Type string `msgpack:"type"`
}

type typeDeclDTO struct {
	Name    string     `msgpack:"name"`
	Kind    uint8      `msgpack:"kind"`
	Fields  []fieldDTO `msgpack:"fields,omitempty"`
	Supers  []string   `msgpack:"supers,omitempty"`
	Methods []string   `msgpack:"methods,omitempty"`
}

type typeEnvDTO struct {
	Decls []typeDeclDTO `msgpack:"decls"`
}

type nodeDTO struct {
	ID     uint32   `msgpack:"id"`
	Kind   string   `msgpack:"kind"`
	Instrs []string `msgpack:"instrs,omitempty"`
	Succs  []uint32 `msgpack:"succs,omitempty"`
}

type procDTO struct {
	Lang       uint8      `msgpack:"lang"`
	Name       string     `msgpack:"name"`
	Formals    []fieldDTO `msgpack:"formals,omitempty"`
	ReturnType string     `msgpack:"ret,omitempty"`
	Nodes      []nodeDTO  `msgpack:"nodes"`
}

type cfgDTO struct {
	Source string    `msgpack:"source"`
	Procs  []procDTO `msgpack:"procs"`
}

func fieldsToDTO(fields []domain.Field) []fieldDTO {
	if len(fields) == 0 {
		return nil
	}
	res := make([]fieldDTO, len(fields))
	for i, f := range fields {
		res[i] = fieldDTO{Name: f.Name, Type: f.Type}
	}
	return res
}

func fieldsFromDTO(dtos []fieldDTO) []domain.Field {
	if len(dtos) == 0 {
		return nil
	}
	res := make([]domain.Field, len(dtos))
	for i, f := range dtos {
		res[i] = domain.Field{Name: f.Name, Type: f.Type}
	}
	return res
}

func typeEnvToDTO(tenv *domain.TypeEnvironment) *typeEnvDTO {
	dto := &typeEnvDTO{Decls: make([]typeDeclDTO, 0, tenv.Len())}
	for decl := range tenv.Decls() {
		dto.Decls = append(dto.Decls, typeDeclDTO{
			Name:    decl.Name,
			Kind:    uint8(decl.Kind),
			Fields:  fieldsToDTO(decl.Fields),
			Supers:  decl.Supers,
			Methods: decl.Methods,
		})
	}
	return dto
}

func typeEnvFromDTO(dto *typeEnvDTO) *domain.TypeEnvironment {
	tenv := domain.NewTypeEnvironment()
	for _, d := range dto.Decls {
		tenv.Add(&domain.TypeDecl{
			Name:    d.Name,
			Kind:    domain.TypeKind(d.Kind),
			Fields:  fieldsFromDTO(d.Fields),
			Supers:  d.Supers,
			Methods: d.Methods,
		})
	}
	return tenv
}

func cfgToDTO(cfg *domain.ControlFlowGraph) (*cfgDTO, error) {
	dto := &cfgDTO{
		Source: cfg.Source.Path(),
		Procs:  make([]procDTO, 0, cfg.Len()),
	}
	for body := range cfg.Procedures() {
		nodes, err := nodesToDTO(body.Nodes)
		if err != nil {
			return nil, zerr.With(err, "procedure", body.Name.String())
		}
		dto.Procs = append(dto.Procs, procDTO{
			Lang:       uint8(body.Name.Language()),
			Name:       body.Name.Name(),
			Formals:    fieldsToDTO(body.Formals),
			ReturnType: body.ReturnType,
			Nodes:      nodes,
		})
	}
	return dto, nil
}

// nodesToDTO narrows node ids to the on-disk width. Negative ids are rejected.
func nodesToDTO(nodes []domain.Node) ([]nodeDTO, error) {
	res := make([]nodeDTO, len(nodes))
	for i, n := range nodes {
		id, err := safecast.Conv[uint32](n.ID)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid node id"), "node", n.ID)
		}
		var succs []uint32
		if len(n.Succs) > 0 {
			succs = make([]uint32, len(n.Succs))
			for j, succ := range n.Succs {
				if succs[j], err = safecast.Conv[uint32](succ); err != nil {
					return nil, zerr.With(zerr.Wrap(err, "invalid successor id"), "node", n.ID)
				}
			}
		}
		res[i] = nodeDTO{ID: id, Kind: n.Kind, Instrs: n.Instrs, Succs: succs}
	}
	return res, nil
}

func nodesFromDTO(dtos []nodeDTO) ([]domain.Node, error) {
	res := make([]domain.Node, len(dtos))
	for i, n := range dtos {
		id, err := safecast.Conv[int](n.ID)
		if err != nil {
			return nil, zerr.Wrap(err, "invalid node id")
		}
		var succs []int
		if len(n.Succs) > 0 {
			succs = make([]int, len(n.Succs))
			for j, succ := range n.Succs {
				if succs[j], err = safecast.Conv[int](succ); err != nil {
					return nil, zerr.Wrap(err, "invalid successor id")
				}
			}
		}
		res[i] = domain.Node{ID: id, Kind: n.Kind, Instrs: n.Instrs, Succs: succs}
	}
	return res, nil
}

func cfgFromDTO(dto *cfgDTO) (*domain.ControlFlowGraph, error) {
	cfg := domain.NewControlFlowGraph(domain.NewSourceFile(dto.Source))
	for _, p := range dto.Procs {
		nodes, err := nodesFromDTO(p.Nodes)
		if err != nil {
			return nil, zerr.With(err, "procedure", p.Name)
		}
		cfg.Add(&domain.ProcedureBody{
			Name:       domain.NewProcName(domain.Language(p.Lang), p.Name),
			Formals:    fieldsFromDTO(p.Formals),
			ReturnType: p.ReturnType,
			Nodes:      nodes,
		})
	}
	return cfg, nil
}
