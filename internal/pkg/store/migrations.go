package store

import (
	"context"

	"github.com/Masterminds/squirrel"
)

const schema = `
create table if not exists users (
	id bigserial primary key,
	username text not null unique,
	password_hash text not null,
	password_salt text not null,
	created_at timestamptz not null default now()
);

create table if not exists sessions (
	id text primary key,
	user_id bigint not null references users (id),
	created_at timestamptz not null default now()
);

create table if not exists scenarios (
	id bigserial primary key,
	owner_id bigint not null references users (id),
	label text not null,
	line_items jsonb not null default '[]'::jsonb,
	eco_weight double precision not null,
	financial_weight double precision not null,
	financial_score double precision not null,
	ecological_score double precision not null,
	global_score double precision not null,
	created_at timestamptz not null default now()
);

create index if not exists scenarios_owner_created_idx
	on scenarios (owner_id, created_at desc);

create table if not exists purchase_drafts (
	id text primary key,
	owner_id bigint not null references users (id),
	label text not null,
	selections jsonb not null default '[]'::jsonb,
	created_at timestamptz not null default now(),
	updated_at timestamptz not null default now()
);
`

func (s *store) Migrate(ctx context.Context) error {
	_, err := s.pool.Execx(ctx, squirrel.Expr(schema))
	return err
}
