package protocol

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (c MoveCommand) Validate() error {
	if c.X < 0 || c.Y < 0 {
		return errors.New("move target cannot be negative")
	}
	return nil
}

func (c AttackCommand) Validate() error {
	if c.MonsterID <= 0 {
		return errors.New("monsterId is required")
	}
	return nil
}

func (c FireballHitCommand) Validate() error {
	if c.MonsterID <= 0 {
		return errors.New("monsterId is required")
	}
	return nil
}
