// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/narraforge/narraforge/ent/character"
	"github.com/narraforge/narraforge/ent/evolutionentry"
	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/ent/motif"
	"github.com/narraforge/narraforge/ent/predicate"
	"github.com/narraforge/narraforge/ent/relationship"
	"github.com/narraforge/narraforge/ent/storyevent"
	"github.com/narraforge/narraforge/ent/world"
)

// WorldQuery is the builder for querying World entities.
type WorldQuery struct {
	config
	ctx                  *QueryContext
	order                []world.OrderOption
	inters               []Interceptor
	predicates           []predicate.World
	withJob              *JobQuery
	withCharacters       *CharacterQuery
	withStoryEvents      *StoryEventQuery
	withRelationships    *RelationshipQuery
	withMotifs           *MotifQuery
	withEvolutionEntries *EvolutionEntryQuery
	modifiers            []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WorldQuery builder.
func (_q *WorldQuery) Where(ps ...predicate.World) *WorldQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *WorldQuery) Limit(limit int) *WorldQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *WorldQuery) Offset(offset int) *WorldQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *WorldQuery) Unique(unique bool) *WorldQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *WorldQuery) Order(o ...world.OrderOption) *WorldQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryJob chains the current query on the "job" edge.
func (_q *WorldQuery) QueryJob() *JobQuery {
	query := (&JobClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(world.Table, world.FieldID, selector),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, world.JobTable, world.JobColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCharacters chains the current query on the "characters" edge.
func (_q *WorldQuery) QueryCharacters() *CharacterQuery {
	query := (&CharacterClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(world.Table, world.FieldID, selector),
			sqlgraph.To(character.Table, character.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, world.CharactersTable, world.CharactersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStoryEvents chains the current query on the "story_events" edge.
func (_q *WorldQuery) QueryStoryEvents() *StoryEventQuery {
	query := (&StoryEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(world.Table, world.FieldID, selector),
			sqlgraph.To(storyevent.Table, storyevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, world.StoryEventsTable, world.StoryEventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRelationships chains the current query on the "relationships" edge.
func (_q *WorldQuery) QueryRelationships() *RelationshipQuery {
	query := (&RelationshipClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(world.Table, world.FieldID, selector),
			sqlgraph.To(relationship.Table, relationship.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, world.RelationshipsTable, world.RelationshipsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMotifs chains the current query on the "motifs" edge.
func (_q *WorldQuery) QueryMotifs() *MotifQuery {
	query := (&MotifClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(world.Table, world.FieldID, selector),
			sqlgraph.To(motif.Table, motif.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, world.MotifsTable, world.MotifsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvolutionEntries chains the current query on the "evolution_entries" edge.
func (_q *WorldQuery) QueryEvolutionEntries() *EvolutionEntryQuery {
	query := (&EvolutionEntryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(world.Table, world.FieldID, selector),
			sqlgraph.To(evolutionentry.Table, evolutionentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, world.EvolutionEntriesTable, world.EvolutionEntriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first World entity from the query.
// Returns a *NotFoundError when no World was found.
func (_q *WorldQuery) First(ctx context.Context) (*World, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{world.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *WorldQuery) FirstX(ctx context.Context) *World {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first World ID from the query.
// Returns a *NotFoundError when no World ID was found.
func (_q *WorldQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{world.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *WorldQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single World entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one World entity is found.
// Returns a *NotFoundError when no World entities are found.
func (_q *WorldQuery) Only(ctx context.Context) (*World, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{world.Label}
	default:
		return nil, &NotSingularError{world.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *WorldQuery) OnlyX(ctx context.Context) *World {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only World ID in the query.
// Returns a *NotSingularError when more than one World ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *WorldQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{world.Label}
	default:
		err = &NotSingularError{world.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *WorldQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Worlds.
func (_q *WorldQuery) All(ctx context.Context) ([]*World, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*World, *WorldQuery]()
	return withInterceptors[[]*World](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *WorldQuery) AllX(ctx context.Context) []*World {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of World IDs.
func (_q *WorldQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(world.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *WorldQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *WorldQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*WorldQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *WorldQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *WorldQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *WorldQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WorldQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *WorldQuery) Clone() *WorldQuery {
	if _q == nil {
		return nil
	}
	return &WorldQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]world.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.World{}, _q.predicates...),
		withJob:              _q.withJob.Clone(),
		withCharacters:       _q.withCharacters.Clone(),
		withStoryEvents:      _q.withStoryEvents.Clone(),
		withRelationships:    _q.withRelationships.Clone(),
		withMotifs:           _q.withMotifs.Clone(),
		withEvolutionEntries: _q.withEvolutionEntries.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithJob tells the query-builder to eager-load the nodes that are connected to
// the "job" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorldQuery) WithJob(opts ...func(*JobQuery)) *WorldQuery {
	query := (&JobClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withJob = query
	return _q
}

// WithCharacters tells the query-builder to eager-load the nodes that are connected to
// the "characters" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorldQuery) WithCharacters(opts ...func(*CharacterQuery)) *WorldQuery {
	query := (&CharacterClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCharacters = query
	return _q
}

// WithStoryEvents tells the query-builder to eager-load the nodes that are connected to
// the "story_events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorldQuery) WithStoryEvents(opts ...func(*StoryEventQuery)) *WorldQuery {
	query := (&StoryEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStoryEvents = query
	return _q
}

// WithRelationships tells the query-builder to eager-load the nodes that are connected to
// the "relationships" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorldQuery) WithRelationships(opts ...func(*RelationshipQuery)) *WorldQuery {
	query := (&RelationshipClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRelationships = query
	return _q
}

// WithMotifs tells the query-builder to eager-load the nodes that are connected to
// the "motifs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorldQuery) WithMotifs(opts ...func(*MotifQuery)) *WorldQuery {
	query := (&MotifClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMotifs = query
	return _q
}

// WithEvolutionEntries tells the query-builder to eager-load the nodes that are connected to
// the "evolution_entries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorldQuery) WithEvolutionEntries(opts ...func(*EvolutionEntryQuery)) *WorldQuery {
	query := (&EvolutionEntryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvolutionEntries = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		JobID string `json:"job_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.World.Query().
//		GroupBy(world.FieldJobID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *WorldQuery) GroupBy(field string, fields ...string) *WorldGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WorldGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = world.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		JobID string `json:"job_id,omitempty"`
//	}
//
//	client.World.Query().
//		Select(world.FieldJobID).
//		Scan(ctx, &v)
func (_q *WorldQuery) Select(fields ...string) *WorldSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &WorldSelect{WorldQuery: _q}
	sbuild.label = world.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WorldSelect configured with the given aggregations.
func (_q *WorldQuery) Aggregate(fns ...AggregateFunc) *WorldSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *WorldQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !world.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *WorldQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*World, error) {
	var (
		nodes       = []*World{}
		_spec       = _q.querySpec()
		loadedTypes = [6]bool{
			_q.withJob != nil,
			_q.withCharacters != nil,
			_q.withStoryEvents != nil,
			_q.withRelationships != nil,
			_q.withMotifs != nil,
			_q.withEvolutionEntries != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*World).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &World{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withJob; query != nil {
		if err := _q.loadJob(ctx, query, nodes, nil,
			func(n *World, e *Job) { n.Edges.Job = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCharacters; query != nil {
		if err := _q.loadCharacters(ctx, query, nodes,
			func(n *World) { n.Edges.Characters = []*Character{} },
			func(n *World, e *Character) { n.Edges.Characters = append(n.Edges.Characters, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStoryEvents; query != nil {
		if err := _q.loadStoryEvents(ctx, query, nodes,
			func(n *World) { n.Edges.StoryEvents = []*StoryEvent{} },
			func(n *World, e *StoryEvent) { n.Edges.StoryEvents = append(n.Edges.StoryEvents, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRelationships; query != nil {
		if err := _q.loadRelationships(ctx, query, nodes,
			func(n *World) { n.Edges.Relationships = []*Relationship{} },
			func(n *World, e *Relationship) { n.Edges.Relationships = append(n.Edges.Relationships, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMotifs; query != nil {
		if err := _q.loadMotifs(ctx, query, nodes,
			func(n *World) { n.Edges.Motifs = []*Motif{} },
			func(n *World, e *Motif) { n.Edges.Motifs = append(n.Edges.Motifs, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvolutionEntries; query != nil {
		if err := _q.loadEvolutionEntries(ctx, query, nodes,
			func(n *World) { n.Edges.EvolutionEntries = []*EvolutionEntry{} },
			func(n *World, e *EvolutionEntry) { n.Edges.EvolutionEntries = append(n.Edges.EvolutionEntries, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *WorldQuery) loadJob(ctx context.Context, query *JobQuery, nodes []*World, init func(*World), assign func(*World, *Job)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*World)
	for i := range nodes {
		fk := nodes[i].JobID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(job.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "job_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *WorldQuery) loadCharacters(ctx context.Context, query *CharacterQuery, nodes []*World, init func(*World), assign func(*World, *Character)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*World)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(character.FieldWorldID)
	}
	query.Where(predicate.Character(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(world.CharactersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorldID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "world_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WorldQuery) loadStoryEvents(ctx context.Context, query *StoryEventQuery, nodes []*World, init func(*World), assign func(*World, *StoryEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*World)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(storyevent.FieldWorldID)
	}
	query.Where(predicate.StoryEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(world.StoryEventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorldID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "world_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WorldQuery) loadRelationships(ctx context.Context, query *RelationshipQuery, nodes []*World, init func(*World), assign func(*World, *Relationship)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*World)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(relationship.FieldWorldID)
	}
	query.Where(predicate.Relationship(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(world.RelationshipsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorldID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "world_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WorldQuery) loadMotifs(ctx context.Context, query *MotifQuery, nodes []*World, init func(*World), assign func(*World, *Motif)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*World)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(motif.FieldWorldID)
	}
	query.Where(predicate.Motif(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(world.MotifsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorldID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "world_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WorldQuery) loadEvolutionEntries(ctx context.Context, query *EvolutionEntryQuery, nodes []*World, init func(*World), assign func(*World, *EvolutionEntry)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*World)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(evolutionentry.FieldWorldID)
	}
	query.Where(predicate.EvolutionEntry(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(world.EvolutionEntriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorldID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "world_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *WorldQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *WorldQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(world.Table, world.Columns, sqlgraph.NewFieldSpec(world.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, world.FieldID)
		for i := range fields {
			if fields[i] != world.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withJob != nil {
			_spec.Node.AddColumnOnce(world.FieldJobID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *WorldQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(world.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = world.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *WorldQuery) ForUpdate(opts ...sql.LockOption) *WorldQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *WorldQuery) ForShare(opts ...sql.LockOption) *WorldQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// WorldGroupBy is the group-by builder for World entities.
type WorldGroupBy struct {
	selector
	build *WorldQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *WorldGroupBy) Aggregate(fns ...AggregateFunc) *WorldGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *WorldGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorldQuery, *WorldGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *WorldGroupBy) sqlScan(ctx context.Context, root *WorldQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WorldSelect is the builder for selecting fields of World entities.
type WorldSelect struct {
	*WorldQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *WorldSelect) Aggregate(fns ...AggregateFunc) *WorldSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *WorldSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorldQuery, *WorldSelect](ctx, _s.WorldQuery, _s, _s.inters, v)
}

func (_s *WorldSelect) sqlScan(ctx context.Context, root *WorldQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
