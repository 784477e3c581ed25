package assignment

import "errors"

// ErrAlreadyAssigned проигравший гонку claim получает явную ошибку,
// молчаливого перезаписывания водителя нет.
var ErrAlreadyAssigned = errors.New("delivery already assigned to a driver")
