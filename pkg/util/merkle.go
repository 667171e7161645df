package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

type MerkleNode struct {
	Hash  string
	Left  *MerkleNode
	Right *MerkleNode
}

func HashSHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func HashStringSHA256Hex(value string) string {
	return HashSHA256Hex([]byte(value))
}

// HashFields hashes the "|" joined decimal form of the given integers.
func HashFields(fields ...int) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprint(f)
	}
	return HashStringSHA256Hex(strings.Join(parts, "|"))
}

// BuildMerkleTree pairs leaves left to right. An odd node at the end of a level moves up unchanged,
// so [a b c] and [a b c c] have different roots.
func BuildMerkleTree(leafHashes []string) *MerkleNode {
	if len(leafHashes) == 0 {
		return &MerkleNode{Hash: HashStringSHA256Hex("")}
	}

	nodes := make([]*MerkleNode, 0, len(leafHashes))
	for _, hash := range leafHashes {
		nodes = append(nodes, &MerkleNode{Hash: hash})
	}

	for len(nodes) > 1 {
		nextLevel := make([]*MerkleNode, 0, (len(nodes)+1)/2)
		for i := 0; i < len(nodes); i += 2 {
			if i+1 == len(nodes) {
				nextLevel = append(nextLevel, nodes[i])
				break
			}
			left, right := nodes[i], nodes[i+1]
			nextLevel = append(nextLevel, &MerkleNode{
				Hash:  hashMerklePair(left.Hash, right.Hash),
				Left:  left,
				Right: right,
			})
		}
		nodes = nextLevel
	}

	return nodes[0]
}

// MerkleRoot returns the root hash over the ordered leaves.
func MerkleRoot(leafHashes []string) string {
	return BuildMerkleTree(leafHashes).Hash
}

func hashMerklePair(leftHash, rightHash string) string {
	leftBytes, errLeft := hex.DecodeString(leftHash)
	rightBytes, errRight := hex.DecodeString(rightHash)
	if errLeft != nil || errRight != nil {
		return HashStringSHA256Hex(leftHash + rightHash)
	}
	merged := make([]byte, 0, len(leftBytes)+len(rightBytes))
	merged = append(merged, leftBytes...)
	merged = append(merged, rightBytes...)
	return HashSHA256Hex(merged)
}
