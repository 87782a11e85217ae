package encounterplan

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
	"github.com/KirkDiggler/encounter-budget/internal/errors"
	"github.com/KirkDiggler/encounter-budget/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/encounter-budget/internal/redis"
)

const (
	planKeyPrefix = "encounter_plan:"
	// planIndexKey is a sorted set of plan IDs scored by UpdatedAt
	planIndexKey = "encounter_plan:index"
)

// PlanKey returns the Redis key holding a plan
func PlanKey(id string) string {
	return planKeyPrefix + id
}

// IndexKey returns the Redis key of the plan index
func IndexKey() string {
	return planIndexKey
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis plan repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed plan repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Plan == nil {
		return nil, errors.InvalidArgument(errPlanNil)
	}
	if input.Plan.ID == "" {
		return nil, errors.InvalidArgument(errPlanIDEmpty)
	}

	plan := input.Plan.Clone()
	now := r.clock.Now().Unix()
	plan.Version = 1
	plan.CreatedAt = now
	plan.UpdatedAt = now

	data, err := json.Marshal(plan)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal plan")
	}

	key := PlanKey(plan.ID)
	created, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create plan")
	}
	if !created {
		return nil, errors.AlreadyExists("plan with ID " + plan.ID + " already exists")
	}

	if err := r.client.ZAdd(ctx, planIndexKey, redis.Z{
		Score:  float64(plan.UpdatedAt),
		Member: plan.ID,
	}).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index plan")
	}

	return &CreateOutput{Plan: plan}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlanIDEmpty)
	}

	plan, err := r.load(ctx, r.client, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Plan: plan}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Plan == nil {
		return nil, errors.InvalidArgument(errPlanNil)
	}
	if input.Plan.ID == "" {
		return nil, errors.InvalidArgument(errPlanIDEmpty)
	}

	key := PlanKey(input.Plan.ID)
	var updated *dnd5e.EncounterPlan

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := r.load(ctx, tx, input.Plan.ID)
		if err != nil {
			return err
		}
		if current.Version != input.ExpectedVersion {
			return errors.Abortedf("plan %s is at version %d, expected %d",
				input.Plan.ID, current.Version, input.ExpectedVersion)
		}

		plan := input.Plan.Clone()
		plan.Version = current.Version + 1
		plan.CreatedAt = current.CreatedAt
		plan.UpdatedAt = r.clock.Now().Unix()

		data, err := json.Marshal(plan)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal plan")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.ZAdd(ctx, planIndexKey, redis.Z{
				Score:  float64(plan.UpdatedAt),
				Member: plan.ID,
			})
			return nil
		})
		if err != nil {
			return err
		}

		updated = plan
		return nil
	}, key)

	if stderrors.Is(err, redis.TxFailedErr) {
		return nil, errors.Abortedf("plan %s was modified concurrently", input.Plan.ID)
	}
	if err != nil {
		var appErr *errors.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, errors.Wrapf(err, "failed to update plan")
	}

	return &UpdateOutput{Plan: updated}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlanIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, PlanKey(input.ID))
	pipe.ZRem(ctx, planIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete plan")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("plan with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	limit, offset := input.bounds()

	total, err := r.client.ZCard(ctx, planIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count plans")
	}

	ids, err := r.client.ZRevRange(ctx, planIndexKey, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list plan IDs")
	}
	if len(ids) == 0 {
		return &ListOutput{Plans: []*dnd5e.EncounterPlan{}, Total: int(total)}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = PlanKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get plans")
	}

	plans := make([]*dnd5e.EncounterPlan, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// index entry without a plan
			slog.Warn("dangling plan index entry", "plan_id", ids[i])
			continue
		}

		var plan dnd5e.EncounterPlan
		if err := json.Unmarshal([]byte(raw), &plan); err != nil {
			slog.Warn("skipping unreadable plan",
				"plan_id", ids[i],
				"error", err)
			continue
		}
		plans = append(plans, &plan)
	}

	return &ListOutput{Plans: plans, Total: int(total)}, nil
}

// load reads a plan through cmd, which is the client or a watching tx
func (r *redisRepository) load(ctx context.Context, cmd redis.Cmdable, id string) (*dnd5e.EncounterPlan, error) {
	result, err := cmd.Get(ctx, PlanKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("plan with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get plan")
	}

	var plan dnd5e.EncounterPlan
	if err := json.Unmarshal([]byte(result), &plan); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal plan")
	}

	return &plan, nil
}
