package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/bbagher/tibiaclone/pkg/protocol"
)

// Генератор JSON Schema для кадров сетевого протокола. Браузерный клиент
// и боты сверяются со сгенерированными файлами, а не с Go-кодом.

type frame struct {
	name string
	v    any
}

var serverFrames = []frame{
	{protocol.TypeInit, new(protocol.InitMessage)},
	{protocol.TypePlayerJoined, new(protocol.PlayerJoinedMessage)},
	{protocol.TypePlayerLeft, new(protocol.PlayerLeftMessage)},
	{protocol.TypePlayerMoved, new(protocol.PlayerMovedMessage)},
	{protocol.TypePlayerDamaged, new(protocol.PlayerDamagedMessage)},
	{protocol.TypePlayerDied, new(protocol.PlayerDiedMessage)},
	{protocol.TypeFireballCast, new(protocol.FireballCastMessage)},
	{protocol.TypeMonsterMoved, new(protocol.MonsterMovedMessage)},
	{protocol.TypeMonsterDamaged, new(protocol.MonsterDamagedMessage)},
	{protocol.TypeMonsterDied, new(protocol.MonsterDiedMessage)},
	{protocol.TypeMonsterSpawned, new(protocol.MonsterSpawnedMessage)},
}

var clientFrames = []frame{
	{protocol.TypeMove, new(protocol.MoveCommand)},
	{protocol.TypeFireball, new(protocol.FireballCommand)},
	{protocol.TypeAttack, new(protocol.AttackCommand)},
	{protocol.TypeFireballHit, new(protocol.FireballHitCommand)},
}

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "docs/schema", "directory for generated schemas")
	flag.Parse()

	if err := run(outDir); err != nil {
		fmt.Fprintf(os.Stderr, "schema: %v\n", err)
		os.Exit(1)
	}
}

func run(outDir string) error {
	server := frameUnion(
		"Tibia Clone Server Frames",
		"Frames sent server to client: init plus world deltas.",
		serverFrames,
	)
	if err := writeSchema(filepath.Join(outDir, "server.schema.json"), server); err != nil {
		return err
	}

	client := frameUnion(
		"Tibia Clone Client Frames",
		"Frames sent client to server: the four gameplay verbs.",
		clientFrames,
	)
	return writeSchema(filepath.Join(outDir, "client.schema.json"), client)
}

// frameUnion собирает oneOf из плоских кадров. Каждый вариант
// самодостаточен: без ссылок и без вложенного $schema.
func frameUnion(title, description string, frames []frame) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}

	variants := make([]*jsonschema.Schema, 0, len(frames))
	for _, f := range frames {
		s := reflector.Reflect(f.v)
		s.Version = ""
		s.Title = f.name
		variants = append(variants, s)
	}

	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       title,
		Description: description,
		OneOf:       variants,
	}
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
